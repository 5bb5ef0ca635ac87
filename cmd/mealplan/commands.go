package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/alchemorsel/mealplan/internal/infrastructure/config"
	"github.com/alchemorsel/mealplan/pkg/errors"
)

// options holds flag values shared by every command
type options struct {
	configPath string
	logLevel   string
}

// run executes the command line and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	appErr := asAppError(err)
	encoder := json.NewEncoder(stderr)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(errors.ToErrorResponse(appErr))
	return appErr.ExitCode()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "mealplan",
		Short: "Generate weekly meal plans from a nutritional profile",
		Long: `mealplan computes caloric and macro targets for a profile and fills a
seven day plan with meals built from an ingredient catalog or scaled recipes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newCheckCmd(opts),
		newAllergensCmd(),
	)
	return rootCmd
}

// loadConfig reads configuration and applies the shared flag overrides
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, errors.NewAppError(errors.CodeInvalidInput, "Invalid configuration", err.Error()).WithCause(err)
	}
	if o.logLevel != "" {
		cfg.App.LogLevel = o.logLevel
	}
	return cfg, nil
}

// asAppError turns any command failure into a structured error
func asAppError(err error) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	if stderrors.Is(err, context.Canceled) {
		return errors.NewCancelledError(err)
	}
	// Cobra reports flag and argument problems as plain errors
	return errors.NewAppError(errors.CodeInvalidInput, "Invalid invocation", err.Error()).WithCause(err)
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
