package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "unique-lines",
		Short: "Remove duplicate lines from text files",
		Long: `unique-lines removes duplicate lines from text files in a single
streaming pass, keeping the first occurrence of each line in its
original order. Lines are tracked by digest, so memory grows with
the number of distinct lines rather than with file size.`,
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to YAML config file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newBatchCmd())

	return root
}
