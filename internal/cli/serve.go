package cli

import (
	"careerpro/internal/config"
	"careerpro/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for resume enrichment",
	Long: `Start an HTTP server that exposes the AI enrichment operations as
REST API endpoints.

Available endpoints:
- POST /api/v1/summary: Rewrite a professional summary from a resume document
- POST /api/v1/bullet: Optimize an experience bullet
- POST /api/v1/ats: Score a resume document for ATS readiness
- GET /healthz: Health check endpoint
- GET /stats: Server statistics and rate limiting info

TLS is enabled when both --cert-file and --key-file are set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
	serveCmd.Flags().String("cert-file", "", "Server certificate file (PEM, overrides config)")
	serveCmd.Flags().String("key-file", "", "Server private key file (PEM, overrides config)")
}

// applyServeFlags overlays the serve command flags onto the loaded server
// configuration. Unset flags leave the config values alone.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if v, _ := flags.GetString("port"); v != "" {
		cfg.Server.Port = v
	}
	if v, _ := flags.GetString("host"); v != "" {
		cfg.Server.Host = v
	}
	if v, _ := flags.GetString("cert-file"); v != "" {
		cfg.Server.TLSCertFile = v
	}
	if v, _ := flags.GetString("key-file"); v != "" {
		cfg.Server.TLSKeyFile = v
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())
	applyServeFlags(cmd, cfg)
	return server.NewServer(cfg, Version, logger).Start()
}
