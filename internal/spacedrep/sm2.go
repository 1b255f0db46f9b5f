package spacedrep

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/kotoba/internal/timeutil"
)

const (
	// InitialEaseFactor is the SM-2 conventional seed for new items.
	InitialEaseFactor = 2.5

	// MinEaseFactor is the hard floor on the ease factor.
	MinEaseFactor = 1.3

	// FirstInterval and SecondInterval are the fixed intervals (in days)
	// for the first two successful recalls.
	FirstInterval  = 1
	SecondInterval = 6

	// PassQuality is the lowest quality grade counted as a successful recall.
	PassQuality = 3

	minQuality = 1
	maxQuality = 5
)

// ErrUnknownItemType rejects review items of an unrecognized content type.
var ErrUnknownItemType = errors.New("unknown review item type")

// ErrBadQuality rejects recall quality grades outside 1..5.
var ErrBadQuality = errors.New("recall quality out of range")

// Review applies one graded recall to the item's scheduling state.
//
// Quality >= 3 is a successful recall: the interval ladder is 1 day, then
// 6 days, then round(interval * easeFactor), and the ease factor shifts by
// 0.1 - (5-q)*(0.08 + (5-q)*0.02), largest at quality 5. Quality < 3 is a
// lapse: repetitions and interval reset and the ease factor drops by 0.2.
// The ease factor never goes below 1.3. In both cases the next review is
// scheduled interval days after today.
func Review(it *Item, quality int, today time.Time) error {
	if quality < minQuality || quality > maxQuality {
		return fmt.Errorf("%w: %d", ErrBadQuality, quality)
	}

	if quality >= PassQuality {
		switch it.Repetitions {
		case 0:
			it.Interval = FirstInterval
		case 1:
			it.Interval = SecondInterval
		default:
			it.Interval = int(math.Round(float64(it.Interval) * it.EaseFactor))
		}
		it.Repetitions++

		q := float64(quality)
		it.EaseFactor = math.Max(MinEaseFactor, it.EaseFactor+(0.1-(5-q)*(0.08+(5-q)*0.02)))
	} else {
		it.Repetitions = 0
		it.Interval = FirstInterval
		it.EaseFactor = math.Max(MinEaseFactor, it.EaseFactor-0.2)
	}

	it.NextReview = timeutil.DateOf(today).AddDate(0, 0, it.Interval)
	return nil
}
