package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EgiFazila/solrisk/internal/feature"
	"github.com/EgiFazila/solrisk/internal/score"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "List the feature schema in extraction order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, def := range feature.Schema(feature.DefaultKeywords) {
				fmt.Fprintln(cmd.OutOrStdout(), def.Name)
			}
			return nil
		},
	}
}

func newRulesCmd() *cobra.Command {
	var rulesPath string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the active scoring rules and weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := score.Load(rulesPath)
			if err != nil {
				return err
			}
			for _, line := range rs.Describe() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "clamp\tmax %d\tlow <= %d < medium <= %d < high\n", rs.MaxScore, rs.LowMax, rs.MediumMax)
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Path to a YAML scoring ruleset (default: built-in rules)")
	return cmd
}
