package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/creativecreature/sheetcache/internal/config"
	"github.com/creativecreature/sheetcache/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool
	jsonOutput bool
	timeout    time.Duration

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "leaguebot",
	Short: "Serve league standings, stats and rosters from a Google spreadsheet",
	Long: `leaguebot reads the league spreadsheet through a read-through cache.

Every range shares one freshness window (SHEETCACHE_TTL_SECONDS, default 300).
Within the window, repeated requests are answered from memory; after it, the
next request goes back to the spreadsheet.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			configPath = os.Getenv("SHEETCACHE_CONFIG")
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file (or set SHEETCACHE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for one-shot commands")

	// One-shot output
	for _, cmd := range []*cobra.Command{standingsCmd, playerCmd, rangeCmd} {
		cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
