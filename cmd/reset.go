package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the seen-question registry and local history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes the seen-question registry and all local history.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.SeenRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear seen registry: %w", err)
		}
		if err := st.EventRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}

		fmt.Println("Local data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip confirmation")
}
