package progress

import (
	"time"

	"github.com/abhisek/kotoba/internal/timeutil"
)

// TouchStreak records one streak-qualifying activity on today's date.
//
// First-ever activity starts the streak at 1. A repeat touch on the same
// day changes nothing. Activity exactly one calendar day after the last
// study date extends the streak; any wider gap (or a last study date in
// the future) resets it to 1. LongestStreak, LastStudyDate and the
// StudyDates set are maintained on every touch.
func (s *Snapshot) TouchStreak(today time.Time) {
	switch {
	case s.LastStudyDate.IsZero():
		s.Streak = 1
	case timeutil.SameDay(s.LastStudyDate, today):
		return
	case timeutil.IsYesterday(s.LastStudyDate, today):
		s.Streak++
	default:
		s.Streak = 1
	}

	if s.Streak > s.LongestStreak {
		s.LongestStreak = s.Streak
	}
	s.LastStudyDate = timeutil.DateOf(today)
	s.StudyDates[timeutil.Format(today)] = true
}
