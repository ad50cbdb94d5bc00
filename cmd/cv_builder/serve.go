package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/logger"
	"github.com/jonathan/cv-builder/internal/server"
	"github.com/jonathan/cv-builder/internal/server/ratelimit"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that holds one session CV document and exposes the editing, AI and export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := cfg.Server.Port
	if servePort > 0 {
		port = servePort
	}

	publicURL, err := cfg.PublicURL()
	if err != nil {
		return fmt.Errorf("invalid server.base_url: %w", err)
	}

	rl := ratelimit.DefaultConfig()
	rl.Enabled = cfg.RateLimit.Enabled
	rl.EndpointConfigs = ratelimit.EndpointConfigs(
		cfg.RateLimit.AIRequestsPerMinute, cfg.RateLimit.AIBurst,
		cfg.RateLimit.ExportRequestsPerMinute, cfg.RateLimit.ExportBurst,
	)
	rl.Whitelist = ratelimit.ParseIPList(os.Getenv("CVB_RATE_LIMIT_WHITELIST"))
	rl.Blacklist = ratelimit.ParseIPList(os.Getenv("CVB_RATE_LIMIT_BLACKLIST"))

	srv := server.New(server.Config{
		Port:            port,
		PublicURL:       publicURL,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		RateLimit:       rl,
		Logger:          logger.Logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
