package hours

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
}

func TestSplit(t *testing.T) {
	cases := []struct {
		name     string
		in       time.Time
		out      time.Time
		ordinary float64
		overtime float64
		total    float64
	}{
		{"under threshold", at(8, 0), at(14, 30), 6.5, 0, 6.5},
		{"exactly threshold", at(7, 0), at(15, 0), 8, 0, 8},
		{"over threshold", at(7, 0), at(17, 15), 8, 2.25, 10.25},
		{"long day", at(5, 0), at(19, 0), 8, 6, 14},
		{"short session", at(9, 0), at(9, 6), 0.1, 0, 0.1},
		{"zero duration", at(9, 0), at(9, 0), 0, 0, 0},
		{"clock out before in", at(10, 0), at(9, 0), 0, 0, 0},
	}
	for _, c := range cases {
		ordinary, overtime, total := Split(c.in, c.out, DefaultOrdinaryThreshold)
		if ordinary != c.ordinary || overtime != c.overtime || total != c.total {
			t.Errorf("%s: Split = (%v, %v, %v), want (%v, %v, %v)",
				c.name, ordinary, overtime, total, c.ordinary, c.overtime, c.total)
		}
	}
}

// The rounded parts must always reassemble into the rounded total, including
// durations that don't divide evenly into hundredths of an hour.
func TestSplitPartsSumToTotal(t *testing.T) {
	start := at(6, 0)
	for minutes := 1; minutes <= 16*60; minutes += 7 {
		end := start.Add(time.Duration(minutes) * time.Minute)
		ordinary, overtime, total := Split(start, end, DefaultOrdinaryThreshold)
		if got := Round2(ordinary + overtime); got != total {
			t.Fatalf("after %d minutes: ordinary %v + overtime %v = %v, want total %v",
				minutes, ordinary, overtime, got, total)
		}
		if ordinary > DefaultOrdinaryThreshold {
			t.Fatalf("after %d minutes: ordinary %v exceeds threshold", minutes, ordinary)
		}
	}
}

func TestSplitSecondsRounding(t *testing.T) {
	// 7h 37m 30s = 7.625h, rounds to 7.63 total.
	end := at(8, 0).Add(7*time.Hour + 37*time.Minute + 30*time.Second)
	ordinary, overtime, total := Split(at(8, 0), end, DefaultOrdinaryThreshold)
	if total != 7.63 || ordinary != 7.63 || overtime != 0 {
		t.Errorf("Split = (%v, %v, %v), want (7.63, 0, 7.63)", ordinary, overtime, total)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.234, 1.23},
		{1.236, 1.24},
		{7.999, 8},
		{-1.236, -1.24},
		{2.625, 2.63},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
