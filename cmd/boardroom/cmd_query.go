package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagQueryLimit int

var queryCmd = &cobra.Command{
	Use:   "query <query>",
	Short: "Search the session ledger and wisdom list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closeStores := newEngine()
		defer closeStores()

		report, err := e.QueryIntelligence(strings.Join(args, " "), flagQueryLimit)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	queryCmd.Flags().IntVar(&flagQueryLimit, "limit", 10, "max results per source")
}
