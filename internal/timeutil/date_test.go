package timeutil

import (
	"testing"
	"time"
)

func TestDateOf_StripsTimeOfDay(t *testing.T) {
	in := time.Date(2024, 3, 15, 23, 45, 12, 999, time.UTC)
	got := DateOf(in)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf() = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same moment", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), true},
		{"same day different hours", time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC), time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), true},
		{"adjacent days", time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		if got := SameDay(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: SameDay() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		b    time.Time
		want int
	}{
		{"same day", base.Add(5 * time.Hour), 0},
		{"next day", base.Add(24 * time.Hour), 1},
		{"four days later", base.AddDate(0, 0, 4), 4},
		{"day before", base.AddDate(0, 0, -1), -1},
		{"across month boundary", time.Date(2024, 2, 2, 1, 0, 0, 0, time.UTC), 23},
	}
	for _, tt := range tests {
		if got := DaysBetween(base, tt.b); got != tt.want {
			t.Errorf("%s: DaysBetween() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestIsYesterday(t *testing.T) {
	today := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
	if !IsYesterday(time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), today) {
		t.Error("expected previous calendar day to count as yesterday")
	}
	if IsYesterday(time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC), today) {
		t.Error("same day is not yesterday")
	}
	if IsYesterday(time.Date(2023, 12, 30, 12, 0, 0, 0, time.UTC), today) {
		t.Error("two days back is not yesterday")
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	in := time.Date(2024, 6, 30, 18, 30, 0, 0, time.UTC)
	s := Format(in)
	if s != "2024-06-30" {
		t.Fatalf("Format() = %q, want 2024-06-30", s)
	}
	back, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !back.Equal(DateOf(in)) {
		t.Errorf("round trip = %v, want %v", back, DateOf(in))
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("not-a-date"); err == nil {
		t.Error("expected error for malformed date")
	}
}
