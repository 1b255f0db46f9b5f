package achievements

import (
	"time"

	"github.com/abhisek/kotoba/internal/progress"
)

func streakAtLeast(n int) Condition {
	return func(p *progress.Snapshot, _ time.Time) bool { return p.Streak >= n }
}

func wordsAtLeast(n int) Condition {
	return func(p *progress.Snapshot, _ time.Time) bool { return len(p.WordsLearned) >= n }
}

func kanjiAtLeast(n int) Condition {
	return func(p *progress.Snapshot, _ time.Time) bool { return len(p.KanjiLearned) >= n }
}

func lessonsAtLeast(n int) Condition {
	return func(p *progress.Snapshot, _ time.Time) bool { return len(p.LessonsCompleted) >= n }
}

func levelAtLeast(n int) Condition {
	return func(p *progress.Snapshot, _ time.Time) bool { return p.Level >= n }
}

func totalXPAtLeast(n int) Condition {
	return func(p *progress.Snapshot, _ time.Time) bool { return p.TotalXP >= n }
}

// Catalog is the full achievement set. The night_owl and early_bird
// conditions depend on the wall clock at evaluation time, not on snapshot
// data, so they are not replayable from persisted state.
var Catalog = []Achievement{
	// Streaks.
	{ID: "streak_3", Title: "3 Day Streak", TitleJP: "三日坊主じゃない！", Description: "Study for 3 days in a row", Icon: "🔥", XPReward: 50, Condition: streakAtLeast(3)},
	{ID: "streak_7", Title: "One Week Warrior", TitleJP: "一週間の戦士", Description: "Study for 7 days in a row", Icon: "⚔️", XPReward: 100, Condition: streakAtLeast(7)},
	{ID: "streak_30", Title: "Monthly Master", TitleJP: "月間マスター", Description: "Study for 30 days in a row", Icon: "👑", XPReward: 500, Condition: streakAtLeast(30)},
	{ID: "streak_100", Title: "Century Student", TitleJP: "百日の努力", Description: "Study for 100 days in a row", Icon: "💯", XPReward: 2000, Condition: streakAtLeast(100)},
	{ID: "streak_365", Title: "Year of Japanese", TitleJP: "一年の旅", Description: "Study for 365 days in a row", Icon: "🎌", XPReward: 10000, Condition: streakAtLeast(365)},

	// Words learned.
	{ID: "words_10", Title: "Word Collector", TitleJP: "言葉コレクター", Description: "Learn 10 words", Icon: "📝", XPReward: 25, Condition: wordsAtLeast(10)},
	{ID: "words_50", Title: "Vocabulary Builder", TitleJP: "語彙力アップ", Description: "Learn 50 words", Icon: "📚", XPReward: 100, Condition: wordsAtLeast(50)},
	{ID: "words_100", Title: "Century of Words", TitleJP: "百語達成", Description: "Learn 100 words", Icon: "💬", XPReward: 250, Condition: wordsAtLeast(100)},
	{ID: "words_500", Title: "Vocabulary Monster", TitleJP: "語彙モンスター", Description: "Learn 500 words", Icon: "🐉", XPReward: 1000, Condition: wordsAtLeast(500)},
	{ID: "words_1000", Title: "Word Wizard", TitleJP: "言葉の魔術師", Description: "Learn 1000 words", Icon: "🧙", XPReward: 3000, Condition: wordsAtLeast(1000)},
	{ID: "words_2000", Title: "Vocabulary King", TitleJP: "語彙の王様", Description: "Learn all 2000 words", Icon: "👸", XPReward: 10000, Condition: wordsAtLeast(2000)},

	// Kanji.
	{ID: "kanji_10", Title: "Kanji Beginner", TitleJP: "漢字入門", Description: "Learn 10 kanji", Icon: "🔤", XPReward: 50, Condition: kanjiAtLeast(10)},
	{ID: "kanji_50", Title: "Kanji Student", TitleJP: "漢字生徒", Description: "Learn 50 kanji", Icon: "📖", XPReward: 200, Condition: kanjiAtLeast(50)},
	{ID: "kanji_100", Title: "Kanji Century", TitleJP: "百字達成", Description: "Learn 100 kanji", Icon: "🎓", XPReward: 500, Condition: kanjiAtLeast(100)},
	{ID: "kanji_500", Title: "Kanji Scholar", TitleJP: "漢字学者", Description: "Learn 500 kanji", Icon: "📜", XPReward: 2000, Condition: kanjiAtLeast(500)},
	{ID: "kanji_1000", Title: "Kanji Master", TitleJP: "漢字マスター", Description: "Learn 1000 kanji", Icon: "🏯", XPReward: 5000, Condition: kanjiAtLeast(1000)},

	// Lessons.
	{ID: "lessons_1", Title: "First Steps", TitleJP: "第一歩", Description: "Complete your first lesson", Icon: "👣", XPReward: 20, Condition: lessonsAtLeast(1)},
	{ID: "lessons_5", Title: "Getting Started", TitleJP: "スタート", Description: "Complete 5 lessons", Icon: "🚀", XPReward: 75, Condition: lessonsAtLeast(5)},
	{ID: "lessons_10", Title: "Dedicated Learner", TitleJP: "熱心な生徒", Description: "Complete 10 lessons", Icon: "📱", XPReward: 150, Condition: lessonsAtLeast(10)},
	{ID: "lessons_25", Title: "Committed Student", TitleJP: "真剣な学生", Description: "Complete 25 lessons", Icon: "🎯", XPReward: 400, Condition: lessonsAtLeast(25)},

	// Levels.
	{ID: "level_5", Title: "Level 5", TitleJP: "レベル5到達", Description: "Reach level 5", Icon: "⭐", XPReward: 100, Condition: levelAtLeast(5)},
	{ID: "level_10", Title: "Double Digits", TitleJP: "二桁レベル", Description: "Reach level 10", Icon: "🌟", XPReward: 300, Condition: levelAtLeast(10)},
	{ID: "level_25", Title: "Quarter Century", TitleJP: "レベル25", Description: "Reach level 25", Icon: "💫", XPReward: 750, Condition: levelAtLeast(25)},
	{ID: "level_50", Title: "Half Way Hero", TitleJP: "半分ヒーロー", Description: "Reach level 50", Icon: "🏆", XPReward: 2000, Condition: levelAtLeast(50)},

	// Lifetime XP.
	{ID: "xp_1000", Title: "First Thousand", TitleJP: "千XP達成", Description: "Earn 1000 XP total", Icon: "💎", XPReward: 100, Condition: totalXPAtLeast(1000)},
	{ID: "xp_10000", Title: "XP Master", TitleJP: "一万XP達成", Description: "Earn 10,000 XP total", Icon: "💰", XPReward: 500, Condition: totalXPAtLeast(10000)},
	{ID: "xp_100000", Title: "XP Legend", TitleJP: "十万XP達成", Description: "Earn 100,000 XP total", Icon: "🏅", XPReward: 2000, Condition: totalXPAtLeast(100000)},

	// Specials.
	{ID: "perfect_quiz", Title: "Perfect Score", TitleJP: "満点", Description: "Get 100% on any quiz", Icon: "✨", XPReward: 50,
		Condition: func(p *progress.Snapshot, _ time.Time) bool { return p.HasPerfectQuiz() }},
	{ID: "night_owl", Title: "Night Owl", TitleJP: "夜更かし", Description: "Study after midnight", Icon: "🦉", XPReward: 25,
		Condition: func(_ *progress.Snapshot, now time.Time) bool { h := now.Hour(); return h >= 0 && h < 5 }},
	{ID: "early_bird", Title: "Early Bird", TitleJP: "早起き", Description: "Study before 7am", Icon: "🐦", XPReward: 25,
		Condition: func(_ *progress.Snapshot, now time.Time) bool { h := now.Hour(); return h >= 5 && h < 7 }},
}

// ByID returns the catalog entry with the given id, or nil.
func ByID(id string) *Achievement {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
