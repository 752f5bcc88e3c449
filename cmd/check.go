package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"valkey-health/pkg/probe"
)

func init() {
	check.Flags().BoolP("json", "j", false, "Print the probe outcome as JSON")

	rootCmd.AddCommand(check)
}

var check = &cobra.Command{
	Use:   "check",
	Short: "Run the Valkey probe once",
	Long:  "This sub-command runs the Valkey probe a single time, prints the outcome and exits with status code 0 if the datastore is healthy, 1 otherwise",

	RunE: func(cmd *cobra.Command, args []string) error {
		outcome := probe.NewValkeyCLIProbe().Exec(context.Background())

		if printJSON, _ := cmd.Flags().GetBool("json"); printJSON {
			if err := printOutcomeJSON(outcome); err != nil {
				return fmt.Errorf("failed to print output: %w", err)
			}
		} else {
			fmt.Println(renderOutcome(outcome))
		}

		if outcome.Status != probe.StatusHealthy {
			os.Exit(1)
		}

		return nil
	},
}

func printOutcomeJSON(outcome probe.Outcome) error {
	raw, err := json.Marshal(struct {
		Status string `json:"status"`
		Fault  string `json:"fault,omitempty"`
	}{
		Status: outcome.Status.String(),
		Fault:  outcome.Fault,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "    "); err != nil {
		return err
	}

	fmt.Println(string(pretty.Color(buf.Bytes(), nil)))
	return nil
}
