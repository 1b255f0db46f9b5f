// Package spacedrep implements the SM-2-style review scheduler: per-item
// scheduling state, the quality-graded interval update, and the review queue.
package spacedrep

import (
	"fmt"
	"time"

	"github.com/abhisek/kotoba/internal/timeutil"
)

// ItemType identifies which content table a review item points into.
type ItemType string

const (
	ItemWord    ItemType = "word"
	ItemKanji   ItemType = "kanji"
	ItemGrammar ItemType = "grammar"
)

// ParseItemType validates a raw item type string.
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemWord, ItemKanji, ItemGrammar:
		return ItemType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownItemType, s)
}

// Item holds the spaced repetition state for a single learnable unit.
// (Type, ID) uniquely identifies an item within a queue.
type Item struct {
	Type        ItemType  `json:"type"`
	ID          int       `json:"id"`
	NextReview  time.Time `json:"nextReview"`
	Interval    int       `json:"interval"`
	EaseFactor  float64   `json:"easeFactor"`
	Repetitions int       `json:"repetitions"`
}

// NewItem creates an item entering review for the first time. The ease
// factor is seeded here so an unseeded item can never reach the scheduler.
func NewItem(typ ItemType, id int, today time.Time) *Item {
	return &Item{
		Type:       typ,
		ID:         id,
		NextReview: timeutil.DateOf(today),
		EaseFactor: InitialEaseFactor,
	}
}

// IsDue reports whether the item is due for review: its scheduled date is
// today or earlier. An item scheduled for today counts as due all day.
func (it *Item) IsDue(now time.Time) bool {
	return !timeutil.DateOf(now).Before(timeutil.DateOf(it.NextReview))
}

// OverdueDays returns how many whole days past due the item is.
// Returns 0 if not yet due.
func (it *Item) OverdueDays(now time.Time) int {
	d := timeutil.DaysBetween(it.NextReview, now)
	if d < 0 {
		return 0
	}
	return d
}

// DaysUntilReview returns the number of days until the item comes due.
// Returns 0 if already due.
func (it *Item) DaysUntilReview(now time.Time) int {
	if it.IsDue(now) {
		return 0
	}
	return timeutil.DaysBetween(now, it.NextReview)
}
