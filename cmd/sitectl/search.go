package main

import (
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/bridge-site-analyzer/internal/usecase"
)

var searchCmd = &cobra.Command{
	Use:   "search <place>",
	Short: "Geocode a place name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		found, err := a.Search.Search(ctx, strings.Join(args, " "))
		if err != nil {
			return eris.Wrap(err, "search")
		}
		return printJSON(cmd.OutOrStdout(), found)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <\"lat, lng\">",
	Short: "Parse and validate a coordinate string",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		point, err := usecase.ParseCoordinates(strings.Join(args, " "))
		if err != nil {
			return eris.Wrap(err, "parse")
		}
		return printJSON(cmd.OutOrStdout(), point)
	},
}
