package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export learner data as JSON",
	Long:  "Writes the current snapshot as indented JSON to the given file, or stdout if omitted.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		b, err := store.ExportJSON(eng.Snapshot())
		if err != nil {
			return err
		}
		if len(args) == 0 {
			fmt.Println(string(b))
			return nil
		}
		if err := os.WriteFile(args[0], b, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Printf("Exported to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import learner data from a JSON backup",
	Long:  "Validates the backup file and replaces the stored snapshot. Rejects the file wholesale on any schema violation.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		snap, err := store.ImportJSON(raw)
		if err != nil {
			return err
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

		if err := st.Snapshots().Save(context.Background(), snap); err != nil {
			return err
		}
		fmt.Printf("Imported %s (level %d, %d total XP)\n", args[0], snap.Level, snap.TotalXP)
		return nil
	},
}
