package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/repository/catalog"
	"github.com/bridge-site-analyzer/internal/repository/postgres"
	"github.com/bridge-site-analyzer/internal/usecase"
)

var (
	catalogFrom     string
	catalogSeedFile string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Reference catalog commands",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog sites, optionally with distance from a point",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		var from *domain.Coordinate
		if catalogFrom != "" {
			p, err := usecase.ParseCoordinates(catalogFrom)
			if err != nil {
				return eris.Wrap(err, "catalog list: parse --from")
			}
			from = &p
		}

		repo, err := catalog.NewEmbeddedRepository(zap.L())
		if err != nil {
			return eris.Wrap(err, "catalog list: load catalog")
		}
		entries, err := usecase.NewCatalogUseCase(repo, zap.L()).List(ctx, from)
		if err != nil {
			return eris.Wrap(err, "catalog list")
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tLAT\tLNG\tDISTANCE_KM")
		for _, e := range entries {
			dist := "-"
			if e.DistanceKm != nil {
				dist = fmt.Sprintf("%.1f", *e.DistanceKm)
			}
			fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%s\n", e.ID, e.Name, e.Point.Lat, e.Point.Lng, dist)
		}
		return tw.Flush()
	},
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the catalog into PostgreSQL",
	Long:  "Upserts the embedded catalog (or --file) into catalog_locations. Requires the DB_* settings.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		data := catalog.EmbeddedDocument()
		if catalogSeedFile != "" {
			b, err := os.ReadFile(catalogSeedFile)
			if err != nil {
				return eris.Wrapf(err, "catalog seed: read %s", catalogSeedFile)
			}
			data = b
		}

		locations, err := catalog.Parse(data)
		if err != nil {
			return eris.Wrap(err, "catalog seed: parse")
		}

		db, err := postgres.New(&cfg.Database, zap.L())
		if err != nil {
			return eris.Wrap(err, "catalog seed: connect")
		}
		defer db.Close()

		if err := postgres.SeedCatalog(ctx, db, locations); err != nil {
			return eris.Wrap(err, "catalog seed")
		}

		zap.L().Info("Catalog seeded", zap.Int("locations", len(locations)))
		return nil
	},
}

func init() {
	catalogListCmd.Flags().StringVar(&catalogFrom, "from", "", "reference point \"lat, lng\" for distances")
	catalogSeedCmd.Flags().StringVar(&catalogSeedFile, "file", "", "catalog YAML to seed instead of the embedded one")
	catalogCmd.AddCommand(catalogListCmd, catalogSeedCmd)
}
