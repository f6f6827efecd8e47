package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagReportFollowed bool
	flagReportEntity   string
)

var reportCmd = &cobra.Command{
	Use:   "report <task> <outcome>",
	Short: "Log a decision outcome to the ledger (and update entity trust)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closeStores := newEngine()
		defer closeStores()

		report, err := e.ReportOutcome(cmd.Context(), args[0], args[1], flagReportFollowed, flagReportEntity)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&flagReportFollowed, "followed", true, "whether the recommendation was followed")
	reportCmd.Flags().StringVar(&flagReportEntity, "entity", "", "entity whose trust profile this outcome updates")
}
