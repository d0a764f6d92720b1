package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/TobiSchelling/ReviewPulse/internal/config"
	"github.com/TobiSchelling/ReviewPulse/internal/database"
	"github.com/TobiSchelling/ReviewPulse/internal/pipeline"
	"github.com/TobiSchelling/ReviewPulse/internal/steam"
	"github.com/TobiSchelling/ReviewPulse/internal/store"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "reviewpulse",
	Short:   "Steam review ingestion and sentiment analytics",
	Long:    "ReviewPulse incrementally collects Steam reviews for tracked titles, consolidates them into a cumulative store, and produces sentiment and word-frequency datasets for BI tools.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(titlesCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("reviewpulse", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/reviewpulse/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to set the access token env var and fetch limits, then track titles with 'reviewpulse titles add'.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and system status",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats()
		if err != nil {
			return fmt.Errorf("getting stats: %w", err)
		}

		lastRun, _ := db.GetLastRunDay()
		if lastRun == "" {
			lastRun = "never"
		}

		fmt.Printf("Today: %s\n\n", store.DayStamp())
		fmt.Println("Catalog:")
		fmt.Printf("  Tracked titles: %d\n", stats.TrackedTitles)
		fmt.Println("\nRuns:")
		fmt.Printf("  Total runs: %d\n", stats.TotalRuns)
		fmt.Printf("  Reviews fetched: %d\n", stats.ReviewsFetched)
		fmt.Printf("  Days with player samples: %d\n", stats.DaysWithSamples)
		fmt.Printf("  Last run: %s\n", lastRun)
		return nil
	},
}

// --- collect / analyze / run commands ---

var day string

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch new reviews and player counts for tracked titles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(func(p *pipeline.Pipeline, day string) *pipeline.Result {
			return p.Collect(day)
		})
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analysis steps: consolidate -> export -> sentiment -> wordfreq",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(func(p *pipeline.Pipeline, day string) *pipeline.Result {
			return p.Analyze(day)
		})
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: collect -> consolidate -> export -> sentiment -> wordfreq",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(func(p *pipeline.Pipeline, day string) *pipeline.Result {
			return p.Run(day)
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{collectCmd, analyzeCmd, runCmd} {
		cmd.Flags().StringVar(&day, "day", "", "Day stamp to process (YYYYMMDD, default today)")
	}
}

func runPipeline(exec func(*pipeline.Pipeline, string) *pipeline.Result) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	effectiveDay := day
	if effectiveDay == "" {
		effectiveDay = store.DayStamp()
	}

	result := exec(pipeline.New(cfg, db), effectiveDay)

	for i, step := range result.Steps {
		fmt.Printf("\nStep %d/%d: %s\n", i+1, len(result.Steps), step.Name)
		if step.Err != nil {
			fmt.Printf("  Error: %v\n", step.Err)
		} else {
			fmt.Printf("  %s\n", step.Summary)
		}
	}
	return nil
}

// --- titles command ---

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Manage tracked titles",
}

var titlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked titles",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		titles, err := db.GetTitles()
		if err != nil {
			return err
		}

		if len(titles) == 0 {
			fmt.Println("No tracked titles. Add one with: reviewpulse titles add <appid> [name]")
			return nil
		}

		fmt.Println("Tracked titles:")
		fmt.Println()
		for _, t := range titles {
			fmt.Printf("  [%d] %s\n", t.AppID, t.Name)
		}
		return nil
	},
}

var titlesAddCmd = &cobra.Command{
	Use:   "add [appid] [name]",
	Short: "Track a title by appid",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		appID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid appid: %s", args[0])
		}

		name := ""
		if len(args) > 1 {
			name = args[1]
		} else {
			name = resolveTitleName(appID)
		}

		added, err := db.InsertTitle(appID, name)
		if err != nil {
			return err
		}
		if !added {
			fmt.Printf("Title %d is already tracked\n", appID)
			return nil
		}
		fmt.Printf("Tracking title [%d]: %s\n", appID, name)
		return nil
	},
}

var titlesRemoveCmd = &cobra.Command{
	Use:   "remove [appid]",
	Short: "Stop tracking a title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		appID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid appid: %s", args[0])
		}

		title, err := db.GetTitle(appID)
		if err != nil {
			return err
		}
		if title == nil {
			return fmt.Errorf("title %d not tracked", appID)
		}

		if err := db.DeleteTitle(appID); err != nil {
			return err
		}
		fmt.Printf("Removed title [%d]: %s\n", appID, title.Name)
		return nil
	},
}

func init() {
	titlesCmd.AddCommand(titlesListCmd)
	titlesCmd.AddCommand(titlesAddCmd)
	titlesCmd.AddCommand(titlesRemoveCmd)
}

// resolveTitleName looks the appid up in the Steam app catalog. Returns
// "" when the catalog is unavailable or the appid is unknown.
func resolveTitleName(appID int64) string {
	client := steam.NewClient(cfg.Source.StoreURL, cfg.Source.APIURL, cfg.Source.APIKeyEnv, cfg.Fetch.PageSize)
	apps, err := client.FetchAppList()
	if err != nil {
		log.Printf("app list lookup failed: %v", err)
		return ""
	}
	for _, app := range apps {
		if app.AppID == appID {
			return app.Name
		}
	}
	return ""
}

func openDB() (*database.DB, error) {
	dataDir := cfg.GetDataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, "reviewpulse.db")
	return database.Open(dbPath)
}
