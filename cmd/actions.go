package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sync-actions/core/config"
	"sync-actions/core/logger"
	"sync-actions/core/reconcile"
	"sync-actions/core/storage"
	"sync-actions/feature/producttype"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	previousFile     string
	nextFile         string
	previousSnapshot string
	nextSnapshot     string
	actionGroups     []string
	verifyActions    bool
	omitEmptyString  bool
	requestVersion   int64
)

// actionsCmd computes the update actions between two product types.
var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Compute the update actions between two product types",
	Long: `Compute the ordered update actions that turn a previous product type
into a next one. Inputs are local JSON/YAML files or stored snapshots.

Examples:
  # Two local files
  actions --previous v1.json --next v2.yaml

  # Two stored snapshots, attributes only
  actions --snapshot-previous v1.json --snapshot-next v2.json --group base=ignore --group attributes=allow

  # Wrap the actions in an update request for version 3
  actions --previous v1.json --next v2.json --version 3`,
	RunE: runActions,
}

func init() {
	actionsCmd.Flags().StringVar(&previousFile, "previous", "", "Local previous product type (JSON or YAML)")
	actionsCmd.Flags().StringVar(&nextFile, "next", "", "Local next product type (JSON or YAML)")
	actionsCmd.Flags().StringVar(&previousSnapshot, "snapshot-previous", "", "Stored previous snapshot name")
	actionsCmd.Flags().StringVar(&nextSnapshot, "snapshot-next", "", "Stored next snapshot name")
	actionsCmd.Flags().StringSliceVar(&actionGroups, "group", nil, "Action group filter as type=allow|ignore (repeatable)")
	actionsCmd.Flags().BoolVar(&verifyActions, "verify", false, "Replay the actions against previous and check the result")
	actionsCmd.Flags().BoolVar(&omitEmptyString, "omit-empty-string", false, "Treat empty base-field strings as undefined")
	actionsCmd.Flags().Int64Var(&requestVersion, "version", 0, "Print an update request with this version instead of bare actions")

	RootCmd.AddCommand(actionsCmd)
}

func runActions(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	groups, err := reconcile.ParseGroups(actionGroups)
	if err != nil {
		return err
	}

	previous, next, err := loadInputs(cmd.Context(), cfg, logg)
	if err != nil {
		return err
	}

	syncer := producttype.NewSyncer(
		producttype.WithLogger(logg),
		producttype.WithOmitEmptyString(omitEmptyString || cfg.Sync.OmitEmptyString),
	)
	actions, err := syncer.BuildActions(previous, next, groups...)
	if err != nil {
		return err
	}

	if verifyActions {
		ok, err := producttype.Verify(previous, next, actions)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("actions do not reproduce the next product type")
		}
		logg.Info("Actions verified", zap.Int("actions", len(actions)))
	}

	summary := reconcile.Summarize(actions)
	for _, name := range summary.SortedNames() {
		logg.Debug("Action count", zap.String("action", name), zap.Int("count", summary.ByAction[name]))
	}

	var out any = actions
	if cmd.Flags().Changed("version") {
		out = reconcile.UpdateRequest{Version: requestVersion, Actions: actions}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func loadInputs(ctx context.Context, cfg *config.Config, logg *zap.Logger) (map[string]any, map[string]any, error) {
	if previousSnapshot != "" || nextSnapshot != "" {
		if previousSnapshot == "" || nextSnapshot == "" {
			return nil, nil, errors.New("both --snapshot-previous and --snapshot-next are required")
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		store := producttype.NewSnapshotStore(client, cfg.Storage.Bucket, cfg.Sync.SnapshotPrefix, logg)

		var previous, next map[string]any
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			previous, err = store.Load(gctx, previousSnapshot)
			return err
		})
		g.Go(func() error {
			var err error
			next, err = store.Load(gctx, nextSnapshot)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
		return previous, next, nil
	}

	if previousFile == "" || nextFile == "" {
		return nil, nil, errors.New("both --previous and --next are required")
	}
	previous, err := producttype.DecodeFile(previousFile)
	if err != nil {
		return nil, nil, err
	}
	next, err := producttype.DecodeFile(nextFile)
	if err != nil {
		return nil, nil, err
	}
	return previous, next, nil
}
