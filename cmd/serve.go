package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"valkey-health/pkg/pidfile"
	"valkey-health/pkg/probe"
)

var pidFile string

func init() {
	rootCmd.AddCommand(serve)
	serve.PersistentFlags().StringVarP(&pidFile, "pidfile", "", "", "write the server process id to this file")
}

var serve = &cobra.Command{
	Use:   "serve",
	Short: "Start the health endpoint",
	Long:  "This sub-command starts the HTTP health endpoint and probes the local Valkey instance on every request",
	RunE: func(cmd *cobra.Command, args []string) error {
		pidFileHandle := pidfile.New(pidFile)

		if err := pidFileHandle.Acquire(); err != nil {
			return fmt.Errorf("failed to write pid file to %q: %w", pidFile, err)
		}

		defer func() {
			if err := pidFileHandle.Release(); err != nil {
				log.Errorf("error while cleaning up the pid file: %s", err)
			}
		}()

		signals := make(chan os.Signal, 1)
		signal.Notify(signals,
			syscall.SIGTERM,
			syscall.SIGINT,
		)

		handler := probe.NewHandler(probe.NewValkeyCLIProbe())

		if err := probe.RunHealthServer(handler, signals); err != nil {
			return fmt.Errorf("health server stopped with error: %w", err)
		}

		log.Info("health server stopped without error")
		return nil
	},
}
