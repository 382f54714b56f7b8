package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/d2ikit/internal/config"
	"github.com/joshuapare/d2ikit/internal/logger"
	"github.com/joshuapare/d2ikit/pkg/d2i"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	// Table and runtime flags; unset flags fall back to the D2I_* environment.
	propsPath string
	itemsPath string
	dbPath    string
	workers   int
	logLevel  string
	logFile   string
)

var (
	cfg    config.Config
	tables d2i.Tables
	kit    *d2i.Kit
)

// skipSetup marks commands that need neither tables nor logging.
const skipSetup = "skip-setup"

var rootCmd = &cobra.Command{
	Use:   "d2ictl",
	Short: "Inspect and edit Diablo II item records",
	Long: `d2ictl reads .d2i item records, prints their header fields and
property lists, and rewrites property lists in place. Every edit is re-parsed
and checked against the original before anything is written.

Tables default to the built-in definitions. Use --props/--items for TSV
exports or --db for a sqlite game database.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	rootCmd.PersistentFlags().StringVar(&propsPath, "props", "", "Property definition TSV (env D2I_PROPS_PATH)")
	rootCmd.PersistentFlags().StringVar(&itemsPath, "items", "", "Item base TSV (env D2I_ITEMS_PATH)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Game database (env D2I_DB_PATH)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Concurrent files for batch (env D2I_WORKERS)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env D2I_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write structured logs to this file (env D2I_LOG_FILE)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipSetup] != "" {
		return nil
	}

	c, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("props") {
		c.PropsPath = propsPath
	}
	if flags.Changed("items") {
		c.ItemsPath = itemsPath
	}
	if flags.Changed("db") {
		c.DBPath = dbPath
	}
	if flags.Changed("workers") {
		c.Workers = workers
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		c.LogFile = logFile
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	level, _ := logger.ParseLevel(cfg.LogLevel)
	if verbose && !flags.Changed("log-level") {
		level = slog.LevelDebug
	}
	if err := logger.Init(logger.Options{
		Enabled: verbose || cfg.LogFile != "",
		Path:    cfg.LogFile,
		Level:   level,
		JSON:    jsonOut,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	return loadKit(cmd.Context(), d2i.TableSource{
		PropsPath: cfg.PropsPath,
		ItemsPath: cfg.ItemsPath,
		DBPath:    cfg.DBPath,
	})
}

func teardown(*cobra.Command, []string) error {
	return logger.Close()
}

// loadKit loads the tables named by src and rebuilds the global kit.
func loadKit(ctx context.Context, src d2i.TableSource) error {
	if ctx == nil {
		ctx = context.Background()
	}
	t, err := d2i.LoadTables(ctx, src)
	if err != nil {
		return err
	}
	tables = t
	kit = d2i.New(t, d2i.Options{Logger: logger.L})
	logger.Debug("tables loaded",
		"properties", t.Props.Len(), "bases", t.Bases.Len(), "db", src.DBPath != "")
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
