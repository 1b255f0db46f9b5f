package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("reset deletes all progress; re-run with --force to confirm")
		}

		path, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(path)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Snapshots().Reset(context.Background()); err != nil {
			return err
		}
		fmt.Println("Learner data reset")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion of all progress")
}
