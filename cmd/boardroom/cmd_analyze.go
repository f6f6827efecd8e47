package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <task>",
	Short: "Full consultation: routing, advisors, precedents, wisdom and tension",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closeStores := newEngine()
		defer closeStores()

		report, err := e.Analyze(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report)
		return nil
	},
}
