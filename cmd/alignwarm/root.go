package main

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"alignwarm/internal/alignmodels"
	"alignwarm/internal/logging"
	"alignwarm/internal/prewarm"
	"alignwarm/internal/services"
)

var errLanguageRequired = errors.New("language argument required")

func newRootCommand(factory loaderFactory) *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var verboseFlag bool

	ctx := newCommandContext(&configFlag, &logLevelFlag, &verboseFlag, factory)

	rootCmd := &cobra.Command{
		Use:   "alignwarm <language>",
		Short: "Load the WhisperX alignment model for a language",
		Long: "Load the WhisperX forced-alignment model for <language> so it is cached for later use.\n" +
			"The language identifier is passed to WhisperX unchanged.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          requireLanguage,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, ctx, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override logging.level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Mirror alignwarm's own log lines to stderr")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newModelsCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}

// requireLanguage only checks that a first positional argument exists; extra
// arguments are ignored and the value itself is never inspected.
func requireLanguage(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errLanguageRequired
	}
	return nil
}

func runLoad(cmd *cobra.Command, ctx *commandContext, language string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger()
	if err != nil {
		return err
	}

	runCtx := services.WithRunID(cmd.Context(), uuid.NewString())
	runCtx = services.WithLanguage(runCtx, language)
	runLogger := logging.WithContext(runCtx, logger)

	entry := alignmodels.ForModel(language, cfg.WhisperX.AlignModel)
	runLogger.Debug("alignment model cache state",
		logging.String("source", string(entry.Source)),
		logging.String("model", entry.ModelID),
		logging.Bool("cached", alignmodels.ResolveCacheDirs(cfg.WhisperX.ModelDir).Cached(entry)),
	)

	loader := ctx.newLoader(cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return prewarm.LoadModel(runCtx, loader, language)
}
