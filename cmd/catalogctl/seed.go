package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"industrial-catalog/internal/database"
	"industrial-catalog/internal/fixtures"
	"industrial-catalog/internal/store"
)

func newSeedCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert the bundled fixtures into MongoDB",
		Long: `Copy every bundled fixture collection into MongoDB keeping the
original ids. Existing documents with the same id are replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.mongoURI == "" {
				return fmt.Errorf("--mongo-uri (or MONGO_URI) is required")
			}
			ctx := cmd.Context()
			logger := opts.logger()
			defer logger.Sync()

			set, err := fixtures.LoadAll()
			if err != nil {
				return err
			}

			client, err := database.Connect(ctx, opts.mongoURI)
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			counts, err := store.SeedMongo(ctx, client.Database(opts.mongoDB), set)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range slices.Sorted(maps.Keys(counts)) {
				fmt.Fprintf(out, "%-16s %d\n", name, counts[name])
			}
			logger.Info("fixtures seeded", zap.String("db", opts.mongoDB), zap.String("collections", strings.Join(slices.Sorted(maps.Keys(counts)), ",")))
			return nil
		},
	}
}
