package app

import (
	"github.com/spf13/cobra"

	"github.com/EgiFazila/solrisk/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "solrisk", Short: "Heuristic risk scorer for Solidity sources"}
	cli.AddCommands(root)
	return root
}
