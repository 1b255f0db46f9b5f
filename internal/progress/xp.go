package progress

import (
	"errors"
	"fmt"
)

// XPPerLevel scales the level-up threshold: level N requires N*XPPerLevel
// working XP to advance.
const XPPerLevel = 100

// ErrNegativeXP rejects XP awards with a negative amount.
var ErrNegativeXP = errors.New("xp amount must be non-negative")

// ErrScoreOutOfRange rejects quiz scores outside 0..100.
var ErrScoreOutOfRange = errors.New("quiz score out of range")

// ErrBadDailyGoal rejects non-positive daily goals.
var ErrBadDailyGoal = errors.New("daily goal must be positive")

// ErrBadLevel rejects level overrides below 1.
var ErrBadLevel = errors.New("level must be at least 1")

// AddXP grants amount XP, resolving any level-ups. The threshold scales
// with the current level, and the loop runs to fixpoint so one large grant
// can produce several level-ups. DailyProgress counts the full amount,
// achievement bonuses included. Returns whether at least one level was
// gained; amount 0 is a legal no-op.
func (s *Snapshot) AddXP(amount int) (leveledUp bool, err error) {
	if amount < 0 {
		return false, fmt.Errorf("%w: %d", ErrNegativeXP, amount)
	}

	s.TotalXP += amount
	s.XP += amount
	s.DailyProgress += amount

	for s.XP >= XPPerLevel*s.Level {
		s.XP -= XPPerLevel * s.Level
		s.Level++
		leveledUp = true
	}
	return leveledUp, nil
}

// SetLevel overrides the current level, used by the level assessment flow.
// Working XP is left untouched.
func (s *Snapshot) SetLevel(level int) error {
	if level < 1 {
		return fmt.Errorf("%w: %d", ErrBadLevel, level)
	}
	s.Level = level
	return nil
}

// SetDailyGoal updates the daily XP target and mirrors it into settings.
func (s *Snapshot) SetDailyGoal(goal int) error {
	if goal <= 0 {
		return fmt.Errorf("%w: %d", ErrBadDailyGoal, goal)
	}
	s.DailyGoal = goal
	s.Settings.DailyGoal = goal
	return nil
}
