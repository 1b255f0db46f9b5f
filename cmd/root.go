package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/engine"
	"github.com/abhisek/kotoba/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kotoba",
	Short: "Japanese learning progress tracker",
	Long:  "Kotoba — progress engine for Japanese study: XP, streaks, spaced repetition and achievements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KOTOBA_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then KOTOBA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine opens the store and loads the engine for a CLI invocation.
// The caller must Close the returned store.
func openEngine(cmd *cobra.Command) (*store.Store, *engine.Engine, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	eng, err := engine.Load(context.Background(), engine.Config{
		Snapshots: st.Snapshots(),
		Events:    st.Events(),
	})
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, eng, nil
}
