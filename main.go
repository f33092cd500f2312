package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"vsplit/batch"
	"vsplit/config"
	"vsplit/ffprobe"
	"vsplit/models"
	"vsplit/sizeparse"
	"vsplit/splitter"
	"vsplit/version"
)

func main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath      string
	ffmpegPath      string
	ffprobePath     string
	safetyFactor    float64
	copyUnderBudget bool
	dryRun          bool
	verbose         bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "vsplit <input_path> <chunk_size>",
		Short: "Split media files into size-capped parts without re-encoding",
		Long: `vsplit estimates, from a media file's duration and size, how many
equal-duration segments keep each part at or below the given size
budget, then cuts them losslessly via ffmpeg stream copy.

The input may be a single media file or a directory; directories are
processed one file at a time and a failure on one file never stops the
rest. Parts land in a <name>_parts directory next to each input, named
<name>_part000<ext>, <name>_part001<ext>, and so on.

Cuts land on the nearest keyframe at or after each boundary, so real
part sizes are approximate. Size units are binary: 1KB = 1024B,
1MB = 1024KB, and so on.`,
		Example: `  vsplit movie.mkv 2GB
  vsplit /media/season-01 500MB
  vsplit --dry-run movie.mkv 700M`,
		Args:          cobra.ExactArgs(2),
		Version:       version.Info(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args[0], args[1])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	root.Flags().StringVar(&flags.configPath, "config", "", "Path to config file (default: search standard locations)")
	root.Flags().StringVar(&flags.ffmpegPath, "ffmpeg", "", "Path to the ffmpeg binary (default: from config or PATH)")
	root.Flags().StringVar(&flags.ffprobePath, "ffprobe", "", "Path to the ffprobe binary (default: from config or PATH)")
	root.Flags().Float64Var(&flags.safetyFactor, "safety", 0, "Fraction of the budget to target, leaving headroom for keyframe overshoot (default: from config)")
	root.Flags().BoolVar(&flags.copyUnderBudget, "copy-under-budget", false, "Produce a one-part copy of files already under budget instead of skipping them")
	root.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Plan and print ffmpeg commands without executing them")
	root.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Print per-segment progress and the run report as JSON")

	return root
}

// run executes the split pipeline for one CLI invocation.
func run(cmd *cobra.Command, flags *rootFlags, inputPath, sizeText string) error {
	// A bad budget aborts before any file is touched
	budgetBytes, err := sizeparse.ParseSize(sizeText)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	// Graceful shutdown on Ctrl+C / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\n⚠️  Interrupt received, finishing current segment...")
		cancel()
	}()

	fmt.Printf("Input:  %s\n", inputPath)
	fmt.Printf("Budget: %s (%d bytes)\n", sizeText, budgetBytes)
	if cfg.DryRun {
		fmt.Println("Mode:   dry run (no files will be written)")
	}
	fmt.Println()

	orch := buildOrchestrator(cfg)
	report, err := orch.Run(ctx, inputPath, budgetBytes)
	if err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Println("\n⚠️  Run cancelled by user")
			os.Exit(130) // Standard exit code for SIGINT
		}
		return err
	}

	printSummary(report)

	if cfg.Verbose {
		if data, err := json.MarshalIndent(report, "", "  "); err == nil {
			fmt.Println(string(data))
		}
	}

	if report.HasFailures() {
		return fmt.Errorf("%d of %d file(s) failed", report.Summary.Failed, len(report.Items))
	}
	return nil
}

// loadConfig layers configuration: defaults < config file < environment
// < CLI flags.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	cfg.FFmpegPath = getenvDefault("VSPLIT_FFMPEG", cfg.FFmpegPath)
	cfg.FFprobePath = getenvDefault("VSPLIT_FFPROBE", cfg.FFprobePath)

	if flags.ffmpegPath != "" {
		cfg.FFmpegPath = flags.ffmpegPath
	}
	if flags.ffprobePath != "" {
		cfg.FFprobePath = flags.ffprobePath
	}
	if cmd.Flags().Changed("safety") {
		cfg.SafetyFactor = flags.safetyFactor
	}
	if flags.copyUnderBudget {
		cfg.CopyUnderBudget = true
	}
	if flags.dryRun {
		cfg.DryRun = true
	}
	if flags.verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildOrchestrator wires the external collaborators from config,
// attaching a progress display in verbose mode.
func buildOrchestrator(cfg *config.Config) *batch.Orchestrator {
	if !cfg.Verbose || cfg.DryRun {
		return batch.NewOrchestrator(cfg)
	}

	// Verbose runs get a live per-segment progress line
	prober := ffprobe.NewProberWithPath(cfg.FFprobePath)
	split := splitter.NewSplitterWithPath(cfg.FFmpegPath)
	split.SetProgressCallback(func(p *models.SplitProgress) {
		fmt.Printf("\r  %s", p.FormatSummary())
		if p.State == models.ProgressStateCompleted {
			fmt.Println()
		}
	})

	return batch.NewOrchestratorWith(batch.WrapProber(prober), split, cfg)
}

// printSummary prints the end-of-run banner distinguishing succeeded,
// skipped, and failed files.
func printSummary(report *models.RunReport) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  Run:        %s\n", report.RunID)
	fmt.Printf("  Files:      %d\n", len(report.Items))
	fmt.Printf("  Succeeded:  %d\n", report.Summary.Processed)
	fmt.Printf("  Skipped:    %d\n", report.Summary.Skipped)
	fmt.Printf("  Failed:     %d\n", report.Summary.Failed)
	fmt.Printf("  Elapsed:    %.2fs\n", report.FinishedAt.Sub(report.StartedAt).Seconds())
	fmt.Println("═══════════════════════════════════════════════════════════")

	for _, item := range report.Items {
		if item.Status == models.StatusFailed {
			fmt.Printf("  ✗ %s: [%s] %s\n", item.Path, item.ErrorCode, item.ErrorMsg)
		}
	}
}

// getenvDefault returns the environment value when set, otherwise the
// fallback.
func getenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
