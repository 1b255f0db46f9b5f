package progress

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTouchStreak_FirstActivity(t *testing.T) {
	s := NewSnapshot()
	s.TouchStreak(day("2024-01-01"))
	if s.Streak != 1 || s.LongestStreak != 1 {
		t.Errorf("streak=%d longest=%d, want 1/1", s.Streak, s.LongestStreak)
	}
	if !s.StudyDates["2024-01-01"] {
		t.Error("study date not recorded")
	}
}

func TestTouchStreak_SameDayIdempotent(t *testing.T) {
	s := NewSnapshot()
	s.TouchStreak(day("2024-01-01"))
	s.TouchStreak(day("2024-01-01").Add(5 * time.Hour))
	s.TouchStreak(day("2024-01-01").Add(20 * time.Hour))
	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1 after same-day touches", s.Streak)
	}
	if len(s.StudyDates) != 1 {
		t.Errorf("studyDates size = %d, want 1", len(s.StudyDates))
	}
}

func TestTouchStreak_ConsecutiveDays(t *testing.T) {
	s := NewSnapshot()
	for i, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		s.TouchStreak(day(d))
		if s.Streak != i+1 {
			t.Fatalf("day %s: streak = %d, want %d", d, s.Streak, i+1)
		}
	}
	if s.LongestStreak != 3 {
		t.Errorf("longest = %d, want 3", s.LongestStreak)
	}
}

func TestTouchStreak_GapResets(t *testing.T) {
	s := NewSnapshot()
	s.Streak = 5
	s.LongestStreak = 5
	s.LastStudyDate = day("2024-01-01")

	s.TouchStreak(day("2024-01-05")) // 4-day gap

	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1 after gap", s.Streak)
	}
	if s.LongestStreak != 5 {
		t.Errorf("longest = %d, want prior max 5 preserved", s.LongestStreak)
	}
}

func TestTouchStreak_FutureLastDateTreatedAsGap(t *testing.T) {
	s := NewSnapshot()
	s.Streak = 3
	s.LongestStreak = 3
	s.LastStudyDate = day("2024-02-01")

	s.TouchStreak(day("2024-01-15"))

	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1 when last study date is in the future", s.Streak)
	}
}

func TestTouchStreak_LongestTracksCurrent(t *testing.T) {
	s := NewSnapshot()
	s.TouchStreak(day("2024-01-01"))
	s.TouchStreak(day("2024-01-02"))
	s.TouchStreak(day("2024-01-10")) // break
	s.TouchStreak(day("2024-01-11"))
	s.TouchStreak(day("2024-01-12"))
	if s.Streak != 3 || s.LongestStreak != 3 {
		t.Errorf("streak=%d longest=%d, want 3/3", s.Streak, s.LongestStreak)
	}
}
