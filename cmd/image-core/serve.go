package main

import (
	"github.com/ironsheep/image-core/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP tools over stdin/stdout",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := cfg.LoggerTo(cmd.ErrOrStderr())
	logger.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	server.Version = Version
	srv := server.New(
		server.WithLogger(logger),
		server.WithMaxRequestBytes(cfg.MaxRequestBytes),
		server.WithCacheSize(cfg.CacheSize),
	)
	return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
