package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the SQL tables and indexes (no-op for MongoDB)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close(ctx)

		fmt.Fprintf(cmd.OutOrStdout(), "Store %s is up to date\n", store.Kind)
		return nil
	},
}
