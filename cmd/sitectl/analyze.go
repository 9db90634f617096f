package main

import (
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/usecase"
)

var analyzePlace string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [\"lat, lng\"]",
	Short: "Analyze a bridge site",
	Long:  "Runs a full site analysis for a coordinate string or, with --place, for a geocoded place name.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if (len(args) == 0) == (analyzePlace == "") {
			return eris.New("analyze: pass either a coordinate string or --place")
		}

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		var point domain.Coordinate
		if analyzePlace != "" {
			found, err := a.Search.Search(ctx, analyzePlace)
			if err != nil {
				return eris.Wrapf(err, "analyze: geocode %q", analyzePlace)
			}
			point = found.Result.Point
			zap.L().Info("Place resolved",
				zap.String("place", analyzePlace),
				zap.String("display_name", found.Result.DisplayName))
		} else {
			point, err = usecase.ParseCoordinates(args[0])
			if err != nil {
				return eris.Wrap(err, "analyze: parse coordinates")
			}
		}

		resp, err := a.SiteAnalysis.Analyze(ctx, point)
		if err != nil {
			return eris.Wrap(err, "analyze")
		}
		return printJSON(cmd.OutOrStdout(), resp.Analysis)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzePlace, "place", "", "place name to geocode instead of coordinates")
}
