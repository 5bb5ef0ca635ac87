package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/alchemorsel/mealplan/internal/infrastructure/catalog"
	"github.com/alchemorsel/mealplan/internal/infrastructure/container"
	"github.com/alchemorsel/mealplan/internal/ports/inbound"
	"github.com/alchemorsel/mealplan/pkg/errors"
)

const dateLayout = "2006-01-02"

type generateOptions struct {
	profilePath string
	catalogPath string
	recipesPath string
	pipeline    string
	start       string
	seed        uint64
}

func newGenerateCmd(opts *options) *cobra.Command {
	gen := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a week meal plan and print it as JSON",
		Example: `  mealplan generate --profile profile.yaml --catalog ingredients.yaml
  mealplan generate --profile profile.yaml --recipes recipes.yaml --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, gen)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&gen.profilePath, "profile", "", "path to the user profile (YAML or JSON)")
	flags.StringVar(&gen.catalogPath, "catalog", "", "path to the ingredient catalog")
	flags.StringVar(&gen.recipesPath, "recipes", "", "path to the recipe pool")
	flags.StringVar(&gen.pipeline, "pipeline", string(inbound.PipelineAuto), "auto, ingredients or recipes")
	flags.StringVar(&gen.start, "start", "", "first day of the plan as YYYY-MM-DD (default today)")
	flags.Uint64Var(&gen.seed, "seed", 0, "seed for reproducible plans")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *options, gen *generateOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if gen.catalogPath != "" {
		cfg.Catalog.IngredientsPath = gen.catalogPath
	}
	if gen.recipesPath != "" {
		cfg.Catalog.RecipesPath = gen.recipesPath
	}

	command, err := gen.command(cmd)
	if err != nil {
		return err
	}

	var svc inbound.MealPlanService
	app := fx.New(
		container.Module(cfg),
		fx.Populate(&svc),
		fx.NopLogger,
	)
	ctx := cmd.Context()
	if err := app.Start(ctx); err != nil {
		return errors.NewInternalError("Failed to start").WithCause(err)
	}
	defer func() { _ = app.Stop(ctx) }()

	result, err := svc.GenerateMealPlan(ctx, command)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

// command builds the use case input from the flags
func (g *generateOptions) command(cmd *cobra.Command) (inbound.GenerateMealPlanCommand, error) {
	var command inbound.GenerateMealPlanCommand

	pipeline := inbound.Pipeline(g.pipeline)
	switch pipeline {
	case inbound.PipelineAuto, inbound.PipelineIngredients, inbound.PipelineRecipes:
		command.Pipeline = pipeline
	default:
		return command, errors.NewAppError(errors.CodeInvalidEnum, "Invalid pipeline",
			fmt.Sprintf("unknown pipeline %q", g.pipeline))
	}

	profile, err := catalog.LoadProfile(g.profilePath)
	if err != nil {
		return command, errors.NewAppError(errors.CodeInvalidInput, "Invalid profile", err.Error()).WithCause(err)
	}
	command.Profile = profile

	now := time.Now()
	command.StartDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if g.start != "" {
		start, err := time.Parse(dateLayout, g.start)
		if err != nil {
			return command, errors.NewAppError(errors.CodeInvalidInput, "Invalid start date", err.Error()).WithCause(err)
		}
		command.StartDate = start
	}

	if cmd.Flags().Changed("seed") {
		seed := g.seed
		command.Seed = &seed
	}

	return command, nil
}
