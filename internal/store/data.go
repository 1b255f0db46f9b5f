package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/kotoba/internal/progress"
	"github.com/abhisek/kotoba/internal/spacedrep"
	"github.com/abhisek/kotoba/internal/timeutil"
)

// SnapshotVersion is the current serialization format version.
const SnapshotVersion = 1

// SnapshotData is the wire form of a learner snapshot. Dates are
// yyyy-mm-dd strings; empty means never.
type SnapshotData struct {
	Version          int              `json:"version"`
	Level            int              `json:"level"`
	XP               int              `json:"xp"`
	TotalXP          int              `json:"totalXp"`
	Streak           int              `json:"streak"`
	LongestStreak    int              `json:"longestStreak"`
	LastStudyDate    string           `json:"lastStudyDate"`
	StudyDates       []string         `json:"studyDates"`
	WordsLearned     []int            `json:"wordsLearned"`
	KanjiLearned     []int            `json:"kanjiLearned"`
	LessonsCompleted []int            `json:"lessonsCompleted"`
	QuizScores       []QuizScoreData  `json:"quizScores"`
	Achievements     []string         `json:"achievements"`
	DailyGoal        int              `json:"dailyGoal"`
	DailyProgress    int              `json:"dailyProgress"`
	LastResetDate    string           `json:"lastResetDate"`
	ReviewQueue      []ReviewItemData `json:"reviewQueue"`
	Settings         SettingsData     `json:"settings"`
}

// QuizScoreData is one lesson-completion log entry on the wire.
type QuizScoreData struct {
	LessonID int    `json:"lessonId"`
	Score    int    `json:"score"`
	Date     string `json:"date"`
}

// ReviewItemData carries the full per-item scheduling state.
type ReviewItemData struct {
	Type        string  `json:"type"`
	ID          int     `json:"id"`
	NextReview  string  `json:"nextReview"`
	Interval    int     `json:"interval"`
	EaseFactor  float64 `json:"easeFactor"`
	Repetitions int     `json:"repetitions"`
}

// SettingsData mirrors progress.Settings on the wire.
type SettingsData struct {
	DailyGoal     int  `json:"dailyGoal"`
	Notifications bool `json:"notifications"`
	DarkMode      bool `json:"darkMode"`
	SoundEffects  bool `json:"soundEffects"`
	PreferRomaji  bool `json:"preferRomaji"`
	ShowFurigana  bool `json:"showFurigana"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return timeutil.Format(t)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return timeutil.Parse(s)
}

// FromSnapshot converts the domain snapshot to its wire form. Set-valued
// fields are emitted in sorted order so the output is deterministic.
func FromSnapshot(p *progress.Snapshot) SnapshotData {
	d := SnapshotData{
		Version:          SnapshotVersion,
		Level:            p.Level,
		XP:               p.XP,
		TotalXP:          p.TotalXP,
		Streak:           p.Streak,
		LongestStreak:    p.LongestStreak,
		LastStudyDate:    formatDate(p.LastStudyDate),
		StudyDates:       sortedKeys(p.StudyDates),
		WordsLearned:     sortedIntKeys(p.WordsLearned),
		KanjiLearned:     sortedIntKeys(p.KanjiLearned),
		LessonsCompleted: sortedIntKeys(p.LessonsCompleted),
		Achievements:     sortedKeys(p.Achievements),
		DailyGoal:        p.DailyGoal,
		DailyProgress:    p.DailyProgress,
		LastResetDate:    formatDate(p.LastResetDate),
		Settings: SettingsData{
			DailyGoal:     p.Settings.DailyGoal,
			Notifications: p.Settings.Notifications,
			DarkMode:      p.Settings.DarkMode,
			SoundEffects:  p.Settings.SoundEffects,
			PreferRomaji:  p.Settings.PreferRomaji,
			ShowFurigana:  p.Settings.ShowFurigana,
		},
	}
	for _, qs := range p.QuizScores {
		d.QuizScores = append(d.QuizScores, QuizScoreData{
			LessonID: qs.LessonID,
			Score:    qs.Score,
			Date:     formatDate(qs.Date),
		})
	}
	if p.Reviews != nil {
		for _, it := range p.Reviews.Items() {
			d.ReviewQueue = append(d.ReviewQueue, ReviewItemData{
				Type:        string(it.Type),
				ID:          it.ID,
				NextReview:  formatDate(it.NextReview),
				Interval:    it.Interval,
				EaseFactor:  it.EaseFactor,
				Repetitions: it.Repetitions,
			})
		}
	}
	return d
}

// ToSnapshot converts wire data back to the domain snapshot.
func (d SnapshotData) ToSnapshot() (*progress.Snapshot, error) {
	p := progress.NewSnapshot()
	p.Level = d.Level
	if p.Level < 1 {
		p.Level = 1
	}
	p.XP = d.XP
	p.TotalXP = d.TotalXP
	p.Streak = d.Streak
	p.LongestStreak = d.LongestStreak
	p.DailyGoal = d.DailyGoal
	if p.DailyGoal <= 0 {
		p.DailyGoal = progress.DefaultDailyGoal
	}
	p.DailyProgress = d.DailyProgress

	var err error
	if p.LastStudyDate, err = parseDate(d.LastStudyDate); err != nil {
		return nil, fmt.Errorf("lastStudyDate: %w", err)
	}
	if p.LastResetDate, err = parseDate(d.LastResetDate); err != nil {
		return nil, fmt.Errorf("lastResetDate: %w", err)
	}

	for _, s := range d.StudyDates {
		p.StudyDates[s] = true
	}
	for _, id := range d.WordsLearned {
		p.WordsLearned[id] = true
	}
	for _, id := range d.KanjiLearned {
		p.KanjiLearned[id] = true
	}
	for _, id := range d.LessonsCompleted {
		p.LessonsCompleted[id] = true
	}
	for _, id := range d.Achievements {
		p.Achievements[id] = true
	}

	for _, qs := range d.QuizScores {
		date, err := parseDate(qs.Date)
		if err != nil {
			return nil, fmt.Errorf("quiz score date: %w", err)
		}
		p.QuizScores = append(p.QuizScores, progress.QuizScore{
			LessonID: qs.LessonID,
			Score:    qs.Score,
			Date:     date,
		})
	}

	for _, rd := range d.ReviewQueue {
		typ, err := spacedrep.ParseItemType(rd.Type)
		if err != nil {
			return nil, fmt.Errorf("review item: %w", err)
		}
		next, err := parseDate(rd.NextReview)
		if err != nil {
			return nil, fmt.Errorf("review item nextReview: %w", err)
		}
		ease := rd.EaseFactor
		if ease == 0 {
			ease = spacedrep.InitialEaseFactor
		}
		p.Reviews.Add(&spacedrep.Item{
			Type:        typ,
			ID:          rd.ID,
			NextReview:  next,
			Interval:    rd.Interval,
			EaseFactor:  ease,
			Repetitions: rd.Repetitions,
		})
	}

	p.Settings = progress.Settings{
		DailyGoal:     d.Settings.DailyGoal,
		Notifications: d.Settings.Notifications,
		DarkMode:      d.Settings.DarkMode,
		SoundEffects:  d.Settings.SoundEffects,
		PreferRomaji:  d.Settings.PreferRomaji,
		ShowFurigana:  d.Settings.ShowFurigana,
	}
	if p.Settings.DailyGoal <= 0 {
		p.Settings.DailyGoal = p.DailyGoal
	}
	return p, nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedIntKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
