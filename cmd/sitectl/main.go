package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/app"
	"github.com/bridge-site-analyzer/internal/config"
	"github.com/bridge-site-analyzer/internal/pkg/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "sitectl",
	Short:        "Bridge site analysis from the command line",
	Long:         "Analyzes bridge sites, geocodes places and manages the reference catalog using the same configuration as the API.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		log, err := logger.New(cfg.Log.Level)
		if err != nil {
			return eris.Wrap(err, "init logger")
		}
		zap.ReplaceGlobals(log)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd, searchCmd, parseCmd, catalogCmd)
}

// newApp собирает зависимости по загруженной конфигурации
func newApp(ctx context.Context) (*app.App, error) {
	a, err := app.New(ctx, cfg, zap.L())
	if err != nil {
		return nil, eris.Wrap(err, "init application")
	}
	return a, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(v), "encode output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
