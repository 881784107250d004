package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/EgiFazila/solrisk/internal/config"
	"github.com/EgiFazila/solrisk/internal/engine"
	"github.com/EgiFazila/solrisk/internal/model"
	"github.com/EgiFazila/solrisk/internal/report"
	"github.com/EgiFazila/solrisk/internal/score"
	"github.com/EgiFazila/solrisk/internal/tui"
)

func AddCommands(root *cobra.Command) {
	root.AddCommand(newScanCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newRulesCmd())
}

func newScanCmd() *cobra.Command {
	var (
		path          string
		format        string
		budgetMs      int
		failOn        string
		outputFile    string
		sarifOut      string
		rulesPath     string
		baseline      string
		writeBaseline string
		noCache       bool
		useTUI        bool
	)
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Score Solidity sources for heuristic risk signals",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				path = "."
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(budgetMs)*time.Millisecond)
			defer cancel()

			rs, err := loadRuleset(path, rulesPath)
			if err != nil {
				return err
			}
			eng := engine.New(rs)
			result, err := eng.Analyze(ctx, model.AnalyzeRequest{
				Path:         path,
				BaselinePath: baseline,
				NoCache:      noCache,
			})
			if err != nil {
				return err
			}

			if useTUI {
				// TUI mode ignores format flags
				return tui.Run(result.Assessments)
			}
			switch format {
			case "json":
				data, _ := json.MarshalIndent(result, "", "  ")
				if outputFile != "" {
					if err := os.WriteFile(outputFile, data, 0o644); err != nil {
						return err
					}
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
				}
			case "sarif":
				data, _ := report.ToSARIF(result)
				if sarifOut != "" {
					if err := os.WriteFile(sarifOut, data, 0o644); err != nil {
						return err
					}
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
				}
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Assessments: %d (elapsed %s)\n", len(result.Assessments), result.Elapsed)
				for _, a := range result.Assessments {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s score=%d [%s] %s\n", a.File, a.Score, a.Category, a.Fingerprint[:12])
				}
			}

			if writeBaseline != "" {
				if err := engine.WriteBaseline(writeBaseline, result.Assessments); err != nil {
					return err
				}
			}
			if failOn != "" {
				threshold := model.ParseCategory(failOn)
				for _, a := range result.Assessments {
					if model.CategoryGTE(a.Category, threshold) {
						return fmt.Errorf("fail-on threshold met: %s scored %s", a.File, a.Category)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|sarif")
	cmd.Flags().IntVar(&budgetMs, "budget-ms", 4500, "Time budget for the scan in milliseconds")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Fail if an assessment of this category or higher is found (low|medium|high)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write report to file (with --format json)")
	cmd.Flags().StringVar(&sarifOut, "sarif-out", "", "Write SARIF report to file (with --format sarif)")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Path to a YAML scoring ruleset (default: built-in rules)")
	cmd.Flags().StringVar(&baseline, "baseline", "", "Skip documents whose fingerprint appears in this baseline file")
	cmd.Flags().StringVar(&writeBaseline, "write-baseline", "", "Write a baseline file with assessment fingerprints")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the fingerprint-keyed result cache")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Render interactive TUI output")
	return cmd
}

// loadRuleset resolves the active ruleset: an explicit --rules path wins, then
// the rulesPath from the nearest .solrisk.json, then the built-in defaults.
func loadRuleset(scanPath, rulesPath string) (score.Ruleset, error) {
	if rulesPath == "" {
		cfg, _, _ := config.Load(scanPath)
		rulesPath = cfg.RulesPath
	}
	return score.Load(rulesPath)
}
