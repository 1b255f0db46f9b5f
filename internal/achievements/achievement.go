// Package achievements defines the static achievement catalog and the
// evaluation pass that detects newly satisfied conditions.
package achievements

import (
	"time"

	"github.com/abhisek/kotoba/internal/progress"
)

// Condition is a pure predicate over the learner snapshot. The evaluation
// time is passed in for the wall-clock conditions (night owl, early bird);
// everything else ignores it.
type Condition func(p *progress.Snapshot, now time.Time) bool

// Achievement is a named milestone with a one-time XP reward.
type Achievement struct {
	ID          string
	Title       string
	TitleJP     string
	Description string
	Icon        string
	XPReward    int
	Condition   Condition
}

// Evaluate returns every achievement in catalog whose condition holds and
// whose id is not already unlocked in p. It never mutates p; unlocking is
// the caller's job.
func Evaluate(catalog []Achievement, p *progress.Snapshot, now time.Time) []Achievement {
	var unlocked []Achievement
	for _, a := range catalog {
		if p.Achievements[a.ID] {
			continue
		}
		if a.Condition(p, now) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

// Unlocked returns the catalog entries already present in p.
func Unlocked(catalog []Achievement, p *progress.Snapshot) []Achievement {
	var out []Achievement
	for _, a := range catalog {
		if p.Achievements[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

// Locked returns the catalog entries not yet unlocked in p.
func Locked(catalog []Achievement, p *progress.Snapshot) []Achievement {
	var out []Achievement
	for _, a := range catalog {
		if !p.Achievements[a.ID] {
			out = append(out, a)
		}
	}
	return out
}
