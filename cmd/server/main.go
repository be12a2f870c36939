// Command server runs the isoanalytics backend-for-frontend.
//
// Usage:
//
//	isoanalytics serve [--port 4000]
//	isoanalytics version
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/isoanalytics/internal/config"
	"github.com/preston-bernstein/isoanalytics/internal/logging"
	"github.com/preston-bernstein/isoanalytics/internal/server"
)

const (
	appName    = "isoanalytics"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Player analytics backend for the isoanalytics dashboard",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	return root
}

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			logger := logging.NewLogger(logging.Config{
				Level:   cfg.Log.Level,
				Format:  cfg.Log.Format,
				Service: appName,
				Version: appVersion,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server.New(cfg, logger).Run(ctx, stop)
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides PORT)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, appVersion)
		},
	}
}
