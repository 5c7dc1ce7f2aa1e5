package main

import (
	"fmt"

	"editlens.dev/editlens/levenshtein"
	"github.com/spf13/cobra"
)

var distanceScript bool

var distanceCmd = &cobra.Command{
	Use:   "distance <first> <second>",
	Short: "Print the edit distance between two strings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		x, y := []rune(args[0]), []rune(args[1])
		if !distanceScript {
			fmt.Fprintln(out, levenshtein.Distance(x, y))
			return nil
		}
		dist, script := levenshtein.Script(x, y)
		fmt.Fprintln(out, dist)
		for _, e := range script {
			fmt.Fprintln(out, e)
		}
		return nil
	},
}

func init() {
	distanceCmd.Flags().BoolVar(&distanceScript, "script", false, "also print the edit operations")
}
