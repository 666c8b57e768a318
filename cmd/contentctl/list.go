package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:       "list certificates|experiences",
	Short:     "Print stored records as the API serves them",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"certificates", "experiences"},
	RunE:      runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	certs, exps := repositories(store)

	var items interface{}
	switch args[0] {
	case "certificates":
		list, err := certs.List(ctx)
		if err != nil {
			return err
		}
		items = list
	case "experiences":
		list, err := exps.List(ctx)
		if err != nil {
			return err
		}
		items = list
	default:
		return fmt.Errorf("unknown collection %q", args[0])
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
