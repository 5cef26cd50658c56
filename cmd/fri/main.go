package main

import (
	"fmt"
	"os"

	"github.com/arnavshah/fatigue-risk-api/internal/config"
	"github.com/arnavshah/fatigue-risk-api/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose     bool
	presetsFile string
	asJSON      bool

	logger  *zap.Logger
	presets *config.Presets
)

var rootCmd = &cobra.Command{
	Use:   "fri",
	Short: "Score rail shift patterns with the HSE Fatigue and Risk Index",
	Long: `fri evaluates a shift pattern file (YAML, JSON or CSV) and prints the
Risk Index and Fatigue Index for every shift, a worst-case projection, or a
comparison across role presets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(level)
		if err != nil {
			return err
		}
		presets, err = config.LoadPresets(presetsFile)
		if err != nil {
			return err
		}
		logger.Debug("presets loaded", zap.String("file", presetsFile), zap.Int("roles", len(presets.Roles)))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	config.LoadDotEnv(config.DefaultEnvPaths...)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&presetsFile, "presets", os.Getenv("FATIGUE_PRESETS_FILE"), "YAML file of default parameters and role presets")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	rootCmd.AddCommand(evaluateCmd, rolesCmd, levelCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
