package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arnavshah/fatigue-risk-api/pkg/fatigue"
	"github.com/arnavshah/fatigue-risk-api/pkg/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	worstCase bool
	listRoles bool
	night     bool
	fgiScale  bool
)

// loadPattern reads a pattern file. CSV files carry shifts only; YAML and
// JSON files may also carry params.
func loadPattern(path string) (*models.PatternInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		shifts, err := models.ParseShiftsCSV(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &models.PatternInput{Shifts: shifts}, nil
	}

	var in models.PatternInput
	if err := yaml.NewDecoder(f).Decode(&in); err != nil {
		return nil, fmt.Errorf("%s: parse pattern: %w", path, err)
	}
	return &in, nil
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <pattern-file>",
	Short: "Score every shift of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadPattern(args[0])
		if err != nil {
			return err
		}
		params := presets.Params(in.Params)
		logger.Debug("evaluating pattern", zap.String("file", args[0]), zap.Int("shifts", len(in.Shifts)), zap.Bool("worst_case", worstCase))

		eval := fatigue.CalculateCombinedSequence
		if worstCase {
			eval = fatigue.EvaluateWorstCaseCombined
		}
		results, err := eval(in.Shifts, params)
		if err != nil {
			return err
		}
		resp := models.CombinedResponse{Results: results, Summary: fatigue.SummarizeCombined(results)}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		printResults(cmd.OutOrStdout(), resp)
		return nil
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles [pattern-file]",
	Short: "Compare a pattern across role presets, or list the presets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if listRoles || len(args) == 0 {
			if asJSON {
				return printJSON(cmd.OutOrStdout(), presets.Roles)
			}
			printPresets(cmd.OutOrStdout(), presets.Roles)
			return nil
		}

		in, err := loadPattern(args[0])
		if err != nil {
			return err
		}
		results, err := fatigue.EvaluateRoles(in.Shifts, presets.Params(in.Params), presets.Roles)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), results)
		}
		printRoles(cmd.OutOrStdout(), results)
		return nil
	},
}

var levelCmd = &cobra.Command{
	Use:   "level <value>",
	Short: "Classify a Risk Index (or, with --fatigue, a Fatigue Index) value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("value %q: %w", args[0], err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("value %q: not a finite number", args[0])
		}
		level := fatigue.GetRiskLevel(v)
		if fgiScale {
			level = fatigue.GetFatigueLevel(v, night)
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), level)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", styleLevel(level.Level), level.Label)
		return nil
	},
}

func init() {
	evaluateCmd.Flags().BoolVar(&worstCase, "worst-case", false, "score at maximum workload and attention")
	rolesCmd.Flags().BoolVar(&listRoles, "list", false, "list the role presets")
	levelCmd.Flags().BoolVar(&fgiScale, "fatigue", false, "classify on the Fatigue Index scale")
	levelCmd.Flags().BoolVar(&night, "night", false, "use night Fatigue Index bands")
}
