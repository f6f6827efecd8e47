package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagTrustContext string

var trustCmd = &cobra.Command{
	Use:   "trust <entity>",
	Short: "Look up the trust profile for an entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closeStores := newEngine()
		defer closeStores()

		report, err := e.TrustLookup(args[0], flagTrustContext)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	trustCmd.Flags().StringVar(&flagTrustContext, "context", "", "optional usage context for the lookup")
}
