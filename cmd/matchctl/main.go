// Command matchctl is the operator CLI: it issues tokens, seeds clubs from
// YAML, previews notification text and runs a deadline pass by hand.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"football-club/matchday/internal/app"
	"football-club/matchday/internal/config"
	"football-club/matchday/internal/logging"
	"football-club/matchday/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "matchctl",
	Short: "Operate the matchday service from the command line",
	Long: `matchctl talks to the same database as the matchday server.
Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		return logging.Init(cfg.AppEnv)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd, seedCmd, previewCmd, runDeadlinesCmd)
}

// openRuntime wires the full runtime with a private metrics registry so CLI
// runs never collide with the server's default one.
func openRuntime() (*app.Runtime, error) {
	return app.Open(cfg, metrics.NewMetricsRegistryWith(prometheus.NewRegistry()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
