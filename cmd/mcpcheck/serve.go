package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/mcpcheck-go/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve <manifest.json>",
	Short: "Serve a manifest locally at the well-known path",
	Long: `Serve validates the manifest file and exposes it at
/.well-known/webmcp.json so it can be checked end to end before
publishing. Refuses to serve an invalid manifest.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :8389)")
	_ = viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	s, err := server.New(server.Options{
		Addr:           cfg.Serve.Addr,
		AllowedOrigins: cfg.Serve.AllowedOrigins,
		ManifestPath:   args[0],
		Logger:         log,
	})
	if err != nil {
		return err
	}

	return s.Run()
}
