package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/diff/textdiff"
)

var diffCmd = &cobra.Command{
	Use:   "diff <first> <second>",
	Short: "Print a line based diff of two files in unified format",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %v", args[0], err)
		}
		b, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading %s: %v", args[1], err)
		}
		if bytes.Equal(a, b) {
			return nil
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "--- %s\n+++ %s\n", args[0], args[1])
		out.Write(textdiff.Unified(a, b, textdiff.IndentHeuristic()))
		return nil
	},
}
