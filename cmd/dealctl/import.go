package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"deal-tracker/internal/deal"
)

// importFile is the document dealctl import reads.
type importFile struct {
	Deals []deal.Deal `yaml:"deals"`
}

type importResult struct {
	Created    int
	Duplicates int
	Failed     int
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create deals from a YAML file",
		Long: "Reads a YAML document with a top-level `deals:` list and creates each deal.\n" +
			"Deals whose address already exists are reported and skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			deals, err := readDeals(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			a, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			res := importDeals(ctx, a.deals, deals, cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "%d created, %d duplicates, %d failed\n", res.Created, res.Duplicates, res.Failed)
			if res.Failed > 0 {
				return fmt.Errorf("%d deal(s) could not be imported", res.Failed)
			}
			return nil
		},
	}
}

func readDeals(r io.Reader) ([]deal.Deal, error) {
	var doc importFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return doc.Deals, nil
}

// importDeals creates deals one by one. Duplicates and invalid deals are reported on out and do
// not stop the import.
func importDeals(ctx context.Context, uc deal.UseCase, deals []deal.Deal, out io.Writer) importResult {
	var res importResult
	for i, d := range deals {
		created, err := uc.Create(ctx, deal.CreateDealInput{Deal: d})
		switch {
		case err == nil:
			res.Created++
			fmt.Fprintf(out, "created   %s (%s)\n", created.Deal.Address, created.Deal.ID)
		case errors.Is(err, deal.ErrDuplicateAddress):
			res.Duplicates++
			existing := ""
			if created.Existing != nil {
				existing = created.Existing.ID
			}
			fmt.Fprintf(out, "duplicate %s (existing %s)\n", d.Address, existing)
		default:
			res.Failed++
			fmt.Fprintf(out, "failed    #%d %s: %v\n", i+1, d.Address, err)
		}
	}
	return res
}
