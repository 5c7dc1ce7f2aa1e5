package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"editlens.dev/editlens/levenshtein"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Interactively explain the edit distance between two strings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return explain(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// explain drives the interactive loop: prompt for two strings, print the
// distance and operations, ask whether to continue. Two empty inputs or a
// negative answer end the session.
func explain(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	readLine := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	for {
		fmt.Fprintln(out, "Enter two strings to compare:")
		a, ok := readLine("first string: ")
		if !ok {
			break
		}
		b, ok := readLine("second string: ")
		if !ok {
			break
		}
		if a == "" && b == "" {
			break
		}

		printComparison(out, a, b)

		answer, ok := readLine("compare another pair? (y/n): ")
		if !ok || !strings.EqualFold(answer, "y") {
			break
		}
		fmt.Fprintln(out)
	}
	return sc.Err()
}

func printComparison(out io.Writer, a, b string) {
	dist, script := levenshtein.Script([]rune(a), []rune(b))
	fmt.Fprintf(out, "\ndistance between %q and %q: %d\n", a, b, dist)
	if dist == 0 {
		fmt.Fprintln(out, "the strings are identical")
		return
	}
	fmt.Fprintf(out, "minimum of %d operations:\n", len(script))
	for i, e := range script {
		fmt.Fprintf(out, "  %d. %s\n", i+1, e)
	}
}
