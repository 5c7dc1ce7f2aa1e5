package main

import (
	"fmt"
	"os"

	"editlens.dev/editlens/render"
	"github.com/spf13/cobra"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report <first> <second>",
	Short: "Write a standalone HTML diff report of two files",
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
		page, err := render.DiffPage(args[0], args[1], a, b)
		if err != nil {
			return err
		}
		if err := os.WriteFile(reportOutput, page, 0644); err != nil {
			return fmt.Errorf("writing report: %v", err)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "report.html", "output file")
}
