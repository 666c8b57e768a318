package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/portfolio/portfolio-api/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert certificates and experiences from a YAML file",
	Long: `Reads a YAML document with "certificates" and "experiences" lists and
inserts every record in file order. Dates are written as YYYY-MM-DD and an
experience without endDate is ongoing.

All records are validated before anything is written. One invalid record
aborts the whole run. On SQL stores the inserts run in one transaction, so a
store error leaves nothing behind. On MongoDB a store error part way through
keeps the records inserted before it; the error reports how many.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "content.yaml", "seed file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := os.Open(seedFile)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := seed.Parse(f)
	if err != nil {
		return err
	}
	// Reject a broken file before touching the store.
	if _, _, err := doc.Entities(); err != nil {
		return err
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	var res seed.Result
	if store.SQL != nil {
		if res, err = seed.ApplySQL(ctx, store.SQL, doc); err != nil {
			return fmt.Errorf("seed rolled back: %w", err)
		}
	} else {
		certs, exps := repositories(store)
		if res, err = seed.Apply(ctx, doc, certs, exps); err != nil {
			return fmt.Errorf("seed stopped after %d certificates and %d experiences: %w", res.Certificates, res.Experiences, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d certificates and %d experiences\n", res.Certificates, res.Experiences)
	return nil
}
