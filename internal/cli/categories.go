package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"trivia-cli/internal/config"
	"trivia-cli/internal/infra/opentdb"
)

// NewCategoriesCmd lists the provider's trivia categories.
func NewCategoriesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List available question categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			client := opentdb.NewClient(cfg.ProviderURL(), config.Duration(cfg.Provider.Timeout, 10*time.Second))
			categories, err := client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			for _, category := range categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", category.ID, category.Name)
			}
			return nil
		},
	}
}
