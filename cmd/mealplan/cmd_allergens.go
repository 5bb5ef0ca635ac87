package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/application/allergen"
)

func newAllergensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allergens",
		Short: "List the allergen names profiles may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher := allergen.NewMatcher(zap.NewNop())
			for _, name := range matcher.SupportedAllergens() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
