package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-01", "2026-12-31", "2024-02-29"}
	invalid := []string{"2026-13-01", "2026-02-30", "01-01-2026", "2026/01/01", "", "not-a-date"}
	for _, d := range valid {
		if !IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidAUPhone(t *testing.T) {
	valid := []string{
		"0412345678",
		"0412 345 678",
		"0412-345-678",
		"+61412345678",
		"61412345678",
		"+61 412 345 678",
	}
	invalid := []string{
		"",
		"12345",
		"041234567",    // too short
		"04123456789",  // too long
		"+6141234567",  // too short
		"1412345678",   // bad prefix
		"+61412345abc", // non-numeric
	}
	for _, p := range valid {
		if !IsValidAUPhone(p) {
			t.Errorf("IsValidAUPhone(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidAUPhone(p) {
			t.Errorf("IsValidAUPhone(%q) = true, want false", p)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "07:00", "17:30", "23:59"}
	invalid := []string{"24:00", "7:00", "07:60", "0700", "07:00:00", "", "noon"}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "phone", Message: "invalid phone number"},
	}
	if got := errs.Error(); got != "email: email is required; phone: invalid phone number" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if m["email"] != "email is required" || m["phone"] != "invalid phone number" {
		t.Errorf("ToMap() = %v", m)
	}
}
