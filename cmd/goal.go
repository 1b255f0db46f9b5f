package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal <xp>",
	Short: "Set the daily XP goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid goal %q: %w", args[0], err)
		}

		st, eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.SetDailyGoal(context.Background(), goal); err != nil {
			return err
		}
		fmt.Printf("Daily goal set to %d XP\n", goal)
		return nil
	},
}
