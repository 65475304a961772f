package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/libcat"
)

var (
	verbose    bool
	configPath string
	format     string

	cfg libcat.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "libcat",
	Short: "An interactive in-memory catalog of books, media and similar items",
	Long: `libcat keeps a catalog of items in memory for the length of one session.
Add, remove and list items, optionally filtered by category.
Nothing is saved: the catalog is gone when you exit.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := libcat.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if format != "" {
			loaded.Format = format
			if err := loaded.Validate(); err != nil {
				return err
			}
		}
		cfg = loaded

		level := slog.LevelInfo
		if verbose || cfg.Verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
		return nil
	},
	RunE: runSession,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a config file (default: libcat.yaml in this or a parent directory)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Catalog output format: table, yaml or json")
}
