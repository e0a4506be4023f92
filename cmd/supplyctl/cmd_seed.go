package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var seedFile string

// supplyctl seed --file fixtures.yaml
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create categories, suppliers, products and branches from a YAML fixtures file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures, err := loadFixtures(seedFile)
		if err != nil {
			return err
		}

		return withUsecases(cmd.Context(), func(ctx context.Context, uc *usecases) error {
			report, err := newSeeder(uc.catalog, uc.suppliers, uc.branches).Run(ctx, fixtures)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d categories, %d suppliers, %d products, %d branches\n",
				report.Categories, report.Suppliers, report.Products, report.Branches)

			return nil
		})
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "fixtures.yaml", "fixtures file to load")
}

func loadFixtures(path string) (*Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read fixtures %s", path)
	}

	return parseFixtures(raw)
}

func parseFixtures(raw []byte) (*Fixtures, error) {
	var fixtures Fixtures
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return nil, errors.Wrap(err, "parse fixtures")
	}

	return &fixtures, nil
}
