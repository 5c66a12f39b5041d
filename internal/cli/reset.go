package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trivia-cli/internal/config"
)

// NewResetCmd discards any saved quiz session.
func NewResetCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved quiz session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			store, err := newSnapshotStore(cfg)
			if err != nil {
				return err
			}
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved session cleared")
			return nil
		},
	}
}
