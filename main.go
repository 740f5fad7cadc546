package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go3tag/internal/bpm"
	"go3tag/internal/config"
	"go3tag/internal/parser"
	"go3tag/internal/runner"
	"go3tag/internal/shared"
)

const toolVersion = "1.0.0"

var (
	dryRun     bool
	verbose    bool
	disableBPM bool
	cpuCount   int
	genre      string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:     "go3tag [flags] PATH...",
	Version: toolVersion,
	Short:   "Writes tags to mp3, flac, and m4a files based on their filenames.",
	Long: fmt.Sprintf(`go3tag (v%s)

Parses artist, album, track number, and title out of audio filenames and
writes them into the embedded metadata of mp3, flac, and m4a files.

Two naming schemes are recognized per directory:
- Album:       "Artist - Album - 01 - Title.flac"
- Compilation: "Album - 01 - Artist - Title.flac"

The total track count is derived from the number of audio files in each
directory, the release year from a "(YYYY)" suffix on the directory name,
and a Cover.jpg next to the files is embedded as front cover art.`, toolVersion),
	Args:          cobra.MinimumNArgs(1),
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	shared.InitializeColors()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if !cfg.DisableBPM && !bpm.CheckFFmpeg() {
		return fmt.Errorf("ffmpeg not found in PATH (required for BPM detection, pass -b to disable)")
	}

	files, err := parser.CollectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		shared.ColorWarning.Println("⚠️ No audio files found.")
		return nil
	}

	warnings := shared.NewWarningCollector(cfg.WarningBehavior != "silent")
	groups := parser.BuildGroups(files, warnings)

	parsed := 0
	for _, group := range groups {
		parsed += len(group.Tracks)
	}

	if cfg.DryRun {
		shared.ColorInfo.Println("🔍 Dry run: no files will be modified.")
	}

	stats := runner.New(cfg, warnings).Process(context.Background(), groups)
	stats.SkippedCount = len(files) - parsed

	printWarnings(cfg, warnings)

	if cfg.DryRun {
		shared.ColorSuccess.Printf("✅ Dry run complete: %s\n", stats.Summary())
	} else {
		shared.ColorSuccess.Printf("✅ Done: %s\n", stats.Summary())
	}
	return nil
}

// printWarnings reports everything left in the collector at the end of a
// run. Parse-stage warnings are only ever collected, never printed inline,
// so the summary runs for both "summary" and "immediate" behavior.
func printWarnings(cfg *config.Config, warnings *shared.WarningCollector) {
	if cfg.WarningBehavior == "silent" {
		return
	}
	warnings.PrintSummary()
}

// buildConfig loads the optional config file and applies flag overrides.
// Flags win over config values, which win over defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		if err := config.LoadConfig(configFile, cfg); err != nil {
			return nil, err
		}
		cfg.ApplyDefaults()
	}

	if cmd.Flags().Changed("genre") {
		cfg.Genre = genre
	}
	if cmd.Flags().Changed("cpu") {
		if cpuCount < 0 {
			return nil, fmt.Errorf("invalid worker count: %d", cpuCount)
		}
		cfg.Parallelism = cpuCount
	}
	if disableBPM {
		cfg.DisableBPM = true
	}
	cfg.DryRun = dryRun
	cfg.Verbose = verbose

	return cfg, nil
}

func init() {
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Do not do anything, just show what is being done")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Be verbose and show what is being done")
	rootCmd.Flags().BoolVarP(&disableBPM, "disable-bpm", "b", false, "Disable BPM detection")
	rootCmd.Flags().IntVarP(&cpuCount, "cpu", "c", 0, "Number of cpu cores to use (0 = all detected cores)")
	rootCmd.Flags().StringVarP(&genre, "genre", "g", config.DefaultGenre, "Genre that is being used")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to a JSON config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		shared.ColorError.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}
