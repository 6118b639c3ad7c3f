package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/image-core/internal/config"
	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "image-core",
		Short: "Array views over images, served as MCP tools",
		Long: `image-core exposes channel, raw and mapped views of images.

Run without a subcommand it serves MCP over stdin/stdout, so it can be
configured directly in an MCP client. The other subcommands run the same
operations from the shell.

Environment variables:
  IMAGE_CORE_LOG_LEVEL          debug, info, warn or error (default info)
  IMAGE_CORE_MAX_REQUEST_BYTES  longest accepted request line (default 1048576)
  IMAGE_CORE_CACHE_SIZE         cached images, 0 for unbounded (default 0)`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "", "Log level, overrides IMAGE_CORE_LOG_LEVEL")
	flags.Int("max-request-bytes", 0, "Request line limit, overrides IMAGE_CORE_MAX_REQUEST_BYTES")
	flags.Int("cache-size", 0, "Image cache size, overrides IMAGE_CORE_CACHE_SIZE")

	root.AddCommand(
		newServeCommand(),
		newVersionCommand(),
		newInfoCommand(),
		newChannelsCommand(),
		newMapCommand(),
	)
	return root
}

// loadConfig reads the environment and applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("max-request-bytes") {
		cfg.MaxRequestBytes, _ = flags.GetInt("max-request-bytes")
	}
	if flags.Changed("cache-size") {
		cfg.CacheSize, _ = flags.GetInt("cache-size")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "image-core %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
