package sms

import (
	"context"
	"testing"
)

func TestFormatPhoneNumber(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"0412345678", "+61412345678", false},
		{"0412 345 678", "+61412345678", false},
		{"0412-345-678", "+61412345678", false},
		{"(04) 1234 5678", "+61412345678", false},
		{"61412345678", "+61412345678", false},
		{"+61412345678", "+61412345678", false},
		{"+61 412 345 678", "+61412345678", false},
		{"12345", "", true},
		{"", "", true},
		{"041234567", "", true}, // too short for the 04 form
	}
	for _, c := range cases {
		got, err := FormatPhoneNumber(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("FormatPhoneNumber(%q) = %q, want error", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("FormatPhoneNumber(%q) returned error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("FormatPhoneNumber(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestSendSkipsWhenUnconfigured(t *testing.T) {
	sender := NewTwilioSender(Config{})
	if err := sender.Send(context.Background(), "0412345678", "test"); err != nil {
		t.Errorf("Send with empty config should be a no-op, got error: %v", err)
	}
}
