package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/alchemorsel/mealplan/internal/infrastructure/container"
	"github.com/alchemorsel/mealplan/pkg/errors"
	"github.com/alchemorsel/mealplan/pkg/healthcheck"
)

func newCheckCmd(opts *options) *cobra.Command {
	var catalogPath, recipesPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that the configured ingredient catalog and recipe pool load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if catalogPath != "" {
				cfg.Catalog.IngredientsPath = catalogPath
			}
			if recipesPath != "" {
				cfg.Catalog.RecipesPath = recipesPath
			}

			var hc *healthcheck.HealthCheck
			app := fx.New(container.Module(cfg), fx.Populate(&hc), fx.NopLogger)
			ctx := cmd.Context()
			if err := app.Start(ctx); err != nil {
				return errors.NewInternalError("Failed to start").WithCause(err)
			}
			defer func() { _ = app.Stop(ctx) }()

			resp := hc.Check(ctx)
			if err := printJSON(cmd.OutOrStdout(), resp); err != nil {
				return err
			}
			if resp.Status == healthcheck.StatusUnhealthy {
				return errors.NewAppError(errors.CodeCatalogUnavailable, "Data source check failed", "")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to the ingredient catalog")
	cmd.Flags().StringVar(&recipesPath, "recipes", "", "path to the recipe pool")
	return cmd
}
