package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"sync-actions/core/config"
	"sync-actions/core/logger"
	"sync-actions/core/storage"
	"sync-actions/feature/producttype"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// snapshotsCmd is the parent command for snapshot storage operations.
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage stored product-type snapshots",
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openSnapshotStore()
		if err != nil {
			return err
		}
		names, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var snapshotsPutCmd = &cobra.Command{
	Use:   "put [file] [name]",
	Short: "Upload a local product type as a snapshot",
	Long: `Decode a local JSON or YAML product type and store it as a snapshot.
The name defaults to the file's base name.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := producttype.DecodeFile(args[0])
		if err != nil {
			return err
		}
		name := filepath.Base(args[0])
		if len(args) == 2 {
			name = args[1]
		}

		store, logg, err := openSnapshotStore()
		if err != nil {
			return err
		}
		if err := store.EnsureBucket(cmd.Context()); err != nil {
			return err
		}
		object, err := store.Save(cmd.Context(), name, doc)
		if err != nil {
			return err
		}
		logg.Info("Snapshot stored", zap.String("object", object))
		return nil
	},
}

var snapshotsGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Print a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openSnapshotStore()
		if err != nil {
			return err
		}
		doc, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		data, err := producttype.Encode(doc, producttype.FormatOf(args[0]))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var snapshotsDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, logg, err := openSnapshotStore()
		if err != nil {
			return err
		}
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		logg.Info("Snapshot deleted", zap.String("object", store.ObjectName(args[0])))
		return nil
	},
}

var snapshotsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every stored snapshot decodes as a product type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, logg, err := openSnapshotStore()
		if err != nil {
			return err
		}
		svc := producttype.NewService(producttype.NewSyncer(), store, producttype.NewPlanRepository(nil), logg, producttype.Config{})
		report, err := svc.CheckSnapshots(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Snapshots: %d, valid: %d\n", report.Total, report.Valid)
		for _, name := range sortedKeys(report.Invalid) {
			fmt.Printf("- %s: %s\n", name, report.Invalid[name])
		}
		if len(report.Invalid) > 0 {
			return fmt.Errorf("%d invalid snapshots", len(report.Invalid))
		}
		return nil
	},
}

func init() {
	snapshotsCmd.AddCommand(snapshotsListCmd, snapshotsPutCmd, snapshotsGetCmd, snapshotsDeleteCmd, snapshotsCheckCmd)
	RootCmd.AddCommand(snapshotsCmd)
}

func openSnapshotStore() (*producttype.SnapshotStore, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return producttype.NewSnapshotStore(client, cfg.Storage.Bucket, cfg.Sync.SnapshotPrefix, logg), logg, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
