package cmd

import (
	"fmt"
	"os"

	"sync-actions/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sync-actions",
	Short: "Product Type Sync Actions",
	Long: `sync-actions computes the ordered update actions that turn one
product-type snapshot into another. It runs as an HTTP service or as a CLI
over local files and snapshots stored in S3 compatible storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with development timestamps for CLI users.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
