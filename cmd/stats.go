package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/achievements"
	"github.com/abhisek/kotoba/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func runStats(cmd *cobra.Command) error {
	st, eng, err := openEngine(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	s := eng.Snapshot()
	fmt.Printf("Level %d  (%d/%d XP to next)\n", s.Level, s.XP, progress.XPPerLevel*s.Level)
	fmt.Printf("Total XP:     %d\n", s.TotalXP)
	fmt.Printf("Streak:       %d day(s), longest %d\n", s.Streak, s.LongestStreak)
	fmt.Printf("Daily goal:   %d/%d XP\n", s.DailyProgress, s.DailyGoal)
	fmt.Printf("Words:        %d learned\n", len(s.WordsLearned))
	fmt.Printf("Kanji:        %d learned\n", len(s.KanjiLearned))
	fmt.Printf("Lessons:      %d completed\n", len(s.LessonsCompleted))
	fmt.Printf("Reviews due:  %d of %d tracked\n", len(eng.DueReviews()), s.Reviews.Len())
	fmt.Printf("Achievements: %d/%d\n", len(s.Achievements), len(achievements.Catalog))
	return nil
}
