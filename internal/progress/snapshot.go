// Package progress holds the persisted learner state and the arithmetic
// that mutates it: the XP/leveling engine and the study-streak tracker.
package progress

import (
	"time"

	"github.com/abhisek/kotoba/internal/spacedrep"
)

// QuizScore is one lesson-completion record. The log is append-only and may
// contain repeats when a lesson is retaken.
type QuizScore struct {
	LessonID int       `json:"lessonId"`
	Score    int       `json:"score"`
	Date     time.Time `json:"date"`
}

// Settings holds display/behavior preferences. The engine treats them as
// opaque except for DailyGoal, which mirrors Snapshot.DailyGoal.
type Settings struct {
	DailyGoal     int  `json:"dailyGoal"`
	Notifications bool `json:"notifications"`
	DarkMode      bool `json:"darkMode"`
	SoundEffects  bool `json:"soundEffects"`
	PreferRomaji  bool `json:"preferRomaji"`
	ShowFurigana  bool `json:"showFurigana"`
}

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	DailyGoal     *int
	Notifications *bool
	DarkMode      *bool
	SoundEffects  *bool
	PreferRomaji  *bool
	ShowFurigana  *bool
}

// Apply merges the patch into s.
func (s *Settings) Apply(p SettingsPatch) {
	if p.DailyGoal != nil {
		s.DailyGoal = *p.DailyGoal
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.SoundEffects != nil {
		s.SoundEffects = *p.SoundEffects
	}
	if p.PreferRomaji != nil {
		s.PreferRomaji = *p.PreferRomaji
	}
	if p.ShowFurigana != nil {
		s.ShowFurigana = *p.ShowFurigana
	}
}

// DefaultDailyGoal is the XP-per-day target seeded at first launch.
const DefaultDailyGoal = 50

// Snapshot is the single persisted learner aggregate. It is owned by the
// engine and mutated only through engine operations; a zero LastStudyDate
// means no streak-qualifying activity has ever happened.
type Snapshot struct {
	Level         int
	XP            int
	TotalXP       int
	Streak        int
	LongestStreak int
	LastStudyDate time.Time
	StudyDates    map[string]bool // keys are yyyy-mm-dd dates

	WordsLearned     map[int]bool
	KanjiLearned     map[int]bool
	LessonsCompleted map[int]bool
	QuizScores       []QuizScore
	Achievements     map[string]bool

	DailyGoal     int
	DailyProgress int
	LastResetDate time.Time

	Reviews  *spacedrep.Queue
	Settings Settings
}

// NewSnapshot returns the first-launch state.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Level:            1,
		StudyDates:       make(map[string]bool),
		WordsLearned:     make(map[int]bool),
		KanjiLearned:     make(map[int]bool),
		LessonsCompleted: make(map[int]bool),
		Achievements:     make(map[string]bool),
		DailyGoal:        DefaultDailyGoal,
		Reviews:          spacedrep.NewQueue(),
		Settings: Settings{
			DailyGoal:     DefaultDailyGoal,
			Notifications: true,
			SoundEffects:  true,
			ShowFurigana:  true,
		},
	}
}

// Clone returns a deep copy, used as the read-only view handed to callers.
func (s *Snapshot) Clone() *Snapshot {
	cp := *s
	cp.StudyDates = make(map[string]bool, len(s.StudyDates))
	for k, v := range s.StudyDates {
		cp.StudyDates[k] = v
	}
	cp.WordsLearned = make(map[int]bool, len(s.WordsLearned))
	for k, v := range s.WordsLearned {
		cp.WordsLearned[k] = v
	}
	cp.KanjiLearned = make(map[int]bool, len(s.KanjiLearned))
	for k, v := range s.KanjiLearned {
		cp.KanjiLearned[k] = v
	}
	cp.LessonsCompleted = make(map[int]bool, len(s.LessonsCompleted))
	for k, v := range s.LessonsCompleted {
		cp.LessonsCompleted[k] = v
	}
	cp.Achievements = make(map[string]bool, len(s.Achievements))
	for k, v := range s.Achievements {
		cp.Achievements[k] = v
	}
	cp.QuizScores = make([]QuizScore, len(s.QuizScores))
	copy(cp.QuizScores, s.QuizScores)
	if s.Reviews != nil {
		cp.Reviews = s.Reviews.Clone()
	}
	return &cp
}

// HasPerfectQuiz reports whether any logged quiz scored 100.
func (s *Snapshot) HasPerfectQuiz() bool {
	for _, qs := range s.QuizScores {
		if qs.Score == 100 {
			return true
		}
	}
	return false
}
