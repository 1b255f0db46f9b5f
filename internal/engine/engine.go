// Package engine is the progress-engine facade: every mutation of the
// learner snapshot goes through it. Operations are all-or-nothing — invalid
// input is rejected before any state changes — and each successful mutation
// triggers an achievement pass, a persistence write and a change
// notification. The engine is single-writer: callers serialize operations.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kotoba/internal/achievements"
	"github.com/abhisek/kotoba/internal/progress"
	"github.com/abhisek/kotoba/internal/spacedrep"
	"github.com/abhisek/kotoba/internal/store"
	"github.com/abhisek/kotoba/internal/timeutil"
)

// ErrPersistence marks a save failure after a mutation was applied. The
// in-memory snapshot remains authoritative; callers may retry or warn.
var ErrPersistence = errors.New("persistence failure")

// ErrNotTracked rejects a review answer for an item not in the queue.
var ErrNotTracked = errors.New("item not in review queue")

// snapshotKeep is how many historical snapshot rows survive pruning.
const snapshotKeep = 20

// Config wires the engine's collaborators. Zero values are usable: nil
// repos disable persistence and Now defaults to time.Now.
type Config struct {
	Snapshots store.SnapshotRepo
	Events    store.EventRepo
	Catalog   []achievements.Achievement
	Now       func() time.Time
}

// Engine owns the learner snapshot and exposes the mutation operations
// consumed by the UI shell.
type Engine struct {
	snap      *progress.Snapshot
	snapshots store.SnapshotRepo
	events    store.EventRepo
	catalog   []achievements.Achievement
	now       func() time.Time
	sessionID string

	levelUp   bool
	pending   []achievements.Achievement
	observers []func()
}

// New creates an engine around an existing snapshot.
func New(snap *progress.Snapshot, cfg Config) *Engine {
	if snap == nil {
		snap = progress.NewSnapshot()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = achievements.Catalog
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{
		snap:      snap,
		snapshots: cfg.Snapshots,
		events:    cfg.Events,
		catalog:   cfg.Catalog,
		now:       cfg.Now,
		sessionID: uuid.NewString(),
	}
}

// Load restores the latest persisted snapshot (or starts fresh) and runs
// the session-start housekeeping: daily-progress rollover and snapshot
// pruning.
func Load(ctx context.Context, cfg Config) (*Engine, error) {
	var snap *progress.Snapshot
	if cfg.Snapshots != nil {
		loaded, err := cfg.Snapshots.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		snap = loaded
	}
	e := New(snap, cfg)
	if err := e.StartSession(ctx); err != nil {
		return e, err
	}
	return e, nil
}

// Snapshot returns a read-only deep copy of the current learner state.
func (e *Engine) Snapshot() *progress.Snapshot {
	return e.snap.Clone()
}

// Subscribe registers a change listener invoked after every applied
// mutation, regardless of persistence outcome.
func (e *Engine) Subscribe(fn func()) {
	e.observers = append(e.observers, fn)
}

// StartSession rolls daily progress over if the calendar date advanced
// since the last reset and prunes old snapshot rows. Called once at
// startup by the shell.
func (e *Engine) StartSession(ctx context.Context) error {
	today := e.now()
	if e.snapshots != nil {
		_ = e.snapshots.Prune(ctx, snapshotKeep)
	}
	if !e.snap.LastResetDate.IsZero() && timeutil.SameDay(e.snap.LastResetDate, today) {
		return nil
	}
	return e.ResetDailyProgress(ctx)
}

// ResetDailyProgress zeroes today's XP counter and stamps the reset date.
func (e *Engine) ResetDailyProgress(ctx context.Context) error {
	e.snap.DailyProgress = 0
	e.snap.LastResetDate = timeutil.DateOf(e.now())
	return e.commit(ctx, "reset_daily_progress", "")
}

// AddXP grants XP, resolves level-ups and runs the achievement pass.
func (e *Engine) AddXP(ctx context.Context, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", progress.ErrNegativeXP, amount)
	}
	leveled, err := e.snap.AddXP(amount)
	if err != nil {
		return err
	}
	e.levelUp = e.levelUp || leveled
	e.runAchievements()
	return e.commit(ctx, "add_xp", fmt.Sprintf("amount=%d", amount))
}

// LearnWord marks a word as learned. Re-learning a known word is a
// complete no-op: no XP, no achievement pass, no persistence write.
func (e *Engine) LearnWord(ctx context.Context, id int) error {
	if e.snap.WordsLearned[id] {
		return nil
	}
	e.snap.WordsLearned[id] = true
	e.runAchievements()
	return e.commit(ctx, "learn_word", fmt.Sprintf("id=%d", id))
}

// LearnKanji marks a kanji as learned, with the same idempotence contract
// as LearnWord.
func (e *Engine) LearnKanji(ctx context.Context, id int) error {
	if e.snap.KanjiLearned[id] {
		return nil
	}
	e.snap.KanjiLearned[id] = true
	e.runAchievements()
	return e.commit(ctx, "learn_kanji", fmt.Sprintf("id=%d", id))
}

// CompleteLesson logs a quiz score, marks the lesson completed, touches
// the streak and runs the achievement pass. Repeat completions append to
// the score log but don't duplicate the completion set entry.
func (e *Engine) CompleteLesson(ctx context.Context, lessonID, score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: %d", progress.ErrScoreOutOfRange, score)
	}
	today := e.now()
	e.snap.QuizScores = append(e.snap.QuizScores, progress.QuizScore{
		LessonID: lessonID,
		Score:    score,
		Date:     timeutil.DateOf(today),
	})
	e.snap.LessonsCompleted[lessonID] = true
	e.snap.TouchStreak(today)
	e.runAchievements()
	return e.commit(ctx, "complete_lesson", fmt.Sprintf("lesson=%d score=%d", lessonID, score))
}

// TouchStreak records a streak-qualifying activity (assessment or review
// session completion) and runs the achievement pass.
func (e *Engine) TouchStreak(ctx context.Context) error {
	e.snap.TouchStreak(e.now())
	e.runAchievements()
	return e.commit(ctx, "touch_streak", "")
}

// AddToReviewQueue places an item under spaced repetition. Adding an
// already-tracked (type, id) is a no-op.
func (e *Engine) AddToReviewQueue(ctx context.Context, typ spacedrep.ItemType, id int) error {
	if _, err := spacedrep.ParseItemType(string(typ)); err != nil {
		return err
	}
	if !e.snap.Reviews.Add(spacedrep.NewItem(typ, id, e.now())) {
		return nil
	}
	return e.commit(ctx, "queue_review", fmt.Sprintf("type=%s id=%d", typ, id))
}

// RemoveFromReviewQueue drops an item from spaced repetition. Removing an
// untracked item is a no-op.
func (e *Engine) RemoveFromReviewQueue(ctx context.Context, typ spacedrep.ItemType, id int) error {
	if !e.snap.Reviews.Remove(typ, id) {
		return nil
	}
	return e.commit(ctx, "unqueue_review", fmt.Sprintf("type=%s id=%d", typ, id))
}

// RecordReview applies one graded recall (quality 1-5) to a tracked item.
// Invalid quality or an untracked item is rejected before any mutation.
func (e *Engine) RecordReview(ctx context.Context, typ spacedrep.ItemType, id, quality int) error {
	it := e.snap.Reviews.Get(typ, id)
	if it == nil {
		return fmt.Errorf("%w: %s/%d", ErrNotTracked, typ, id)
	}
	if err := spacedrep.Review(it, quality, e.now()); err != nil {
		return err
	}
	return e.commit(ctx, "record_review", fmt.Sprintf("type=%s id=%d quality=%d", typ, id, quality))
}

// DueReviews returns copies of the items due as of now, most overdue first.
func (e *Engine) DueReviews() []*spacedrep.Item {
	due := e.snap.Reviews.Due(e.now())
	out := make([]*spacedrep.Item, len(due))
	for i, it := range due {
		cp := *it
		out[i] = &cp
	}
	return out
}

// SetDailyGoal updates the daily XP target. No achievement pass.
func (e *Engine) SetDailyGoal(ctx context.Context, goal int) error {
	if err := e.snap.SetDailyGoal(goal); err != nil {
		return err
	}
	return e.commit(ctx, "set_daily_goal", fmt.Sprintf("goal=%d", goal))
}

// SetLevel overrides the level directly (level assessment flow).
func (e *Engine) SetLevel(ctx context.Context, level int) error {
	if err := e.snap.SetLevel(level); err != nil {
		return err
	}
	return e.commit(ctx, "set_level", fmt.Sprintf("level=%d", level))
}

// UpdateSettings merges a partial settings update. A daily-goal change in
// the patch is validated and mirrored onto the snapshot field.
func (e *Engine) UpdateSettings(ctx context.Context, patch progress.SettingsPatch) error {
	if patch.DailyGoal != nil && *patch.DailyGoal <= 0 {
		return fmt.Errorf("%w: %d", progress.ErrBadDailyGoal, *patch.DailyGoal)
	}
	e.snap.Settings.Apply(patch)
	if patch.DailyGoal != nil {
		e.snap.DailyGoal = *patch.DailyGoal
	}
	return e.commit(ctx, "update_settings", "")
}

// runAchievements unlocks every newly satisfied achievement, grants the
// batched reward XP, and repeats until a pass unlocks nothing. Each
// iteration must unlock at least one new id and ids never repeat, so the
// loop terminates within the catalog size.
func (e *Engine) runAchievements() {
	now := e.now()
	for i := 0; i < len(e.catalog); i++ {
		newly := achievements.Evaluate(e.catalog, e.snap, now)
		if len(newly) == 0 {
			return
		}
		reward := 0
		for _, a := range newly {
			e.snap.Achievements[a.ID] = true
			e.pending = append(e.pending, a)
			reward += a.XPReward
		}
		if reward == 0 {
			return
		}
		leveled, _ := e.snap.AddXP(reward)
		e.levelUp = e.levelUp || leveled
	}
}

// commit persists the mutated snapshot and logs the operation. The event
// append is best-effort; a snapshot save failure is reported as a
// recoverable ErrPersistence while the in-memory state stays applied.
// Observers fire either way.
func (e *Engine) commit(ctx context.Context, op, detail string) error {
	defer e.notifyObservers()
	if e.events != nil {
		_ = e.events.Append(ctx, store.Event{Session: e.sessionID, Op: op, Detail: detail})
	}
	if e.snapshots != nil {
		if err := e.snapshots.Save(ctx, e.snap); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}
	return nil
}

func (e *Engine) notifyObservers() {
	for _, fn := range e.observers {
		fn()
	}
}
