package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"sync-actions/core/reconcile"
	"sync-actions/feature/producttype"

	"github.com/spf13/cobra"
)

var (
	applyPrevious string
	applyActions  string
	applyFormat   string
)

// applyCmd replays an action list over a local product type.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Replay update actions over a local product type",
	Long: `Apply a JSON action list, as printed by the actions command, to a
local product type and print the result.

Example:
  actions --previous v1.json --next v2.json > actions.json
  apply --previous v1.json --actions actions.json --format yaml`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyPrevious, "previous", "", "Local product type (JSON or YAML)")
	applyCmd.Flags().StringVar(&applyActions, "actions", "", "JSON file holding an action list or update request")
	applyCmd.Flags().StringVar(&applyFormat, "format", producttype.FormatJSON, "Output format (json, yaml)")
	_ = applyCmd.MarkFlagRequired("previous")
	_ = applyCmd.MarkFlagRequired("actions")

	RootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	previous, err := producttype.DecodeFile(applyPrevious)
	if err != nil {
		return err
	}

	actions, err := readActions(applyActions)
	if err != nil {
		return err
	}

	result, err := producttype.Apply(previous, actions)
	if err != nil {
		return err
	}

	data, err := producttype.Encode(result, applyFormat)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

// readActions accepts either a bare action list or an update request.
func readActions(path string) ([]reconcile.UpdateAction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var actions []reconcile.UpdateAction
	if err := json.Unmarshal(data, &actions); err == nil {
		return actions, nil
	}

	var req reconcile.UpdateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse actions: %w", err)
	}
	return req.Actions, nil
}
