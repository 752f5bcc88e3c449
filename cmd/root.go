package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "valkey-health",
	Short:         "Valkey liveness endpoint",
	Long:          "valkey-health exposes the liveness of a local Valkey instance as an HTTP health endpoint, probed by shelling out to `valkey-cli PING`",
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Warn("Running 'valkey-health' without any arguments - defaulting to 'serve'. This behaviour may change in future releases!")
		return serve.RunE(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
