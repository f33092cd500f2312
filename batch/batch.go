// Package batch drives the per-file split pipeline: resolve inputs,
// probe, plan, split, and collect a run report.
//
// Processing is strictly sequential. Each file is probed, planned, and
// split fully before the next one begins, and a failure on one file
// never aborts the rest of the batch.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"vsplit/config"
	"vsplit/errs"
	"vsplit/ffprobe"
	"vsplit/models"
	"vsplit/planner"
	"vsplit/splitter"
)

// Prober probes a media file for the metadata segment planning needs.
type Prober interface {
	Probe(ctx context.Context, sourcePath string) (planner.MediaInfo, error)
}

// Splitter executes a segment plan against the source file.
type Splitter interface {
	Split(ctx context.Context, segments []*models.Segment) ([]*models.SplitResult, error)
	DryRun(segments []*models.Segment) ([]string, error)
}

// Orchestrator runs the probe → plan → split pipeline over one file or
// every media file in a directory.
type Orchestrator struct {
	prober   Prober
	splitter Splitter
	cfg      *config.Config
	out      io.Writer
}

// NewOrchestrator wires the real ffprobe/ffmpeg collaborators from the
// configuration.
func NewOrchestrator(cfg *config.Config) *Orchestrator {
	prober := ffprobe.NewProberWithPath(cfg.FFprobePath)
	split := splitter.NewSplitterWithPath(cfg.FFmpegPath)
	return NewOrchestratorWith(WrapProber(prober), split, cfg)
}

// NewOrchestratorWith wires explicit collaborators, used by tests and
// callers that pre-configure the splitter (progress callbacks).
func NewOrchestratorWith(prober Prober, split Splitter, cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		prober:   prober,
		splitter: split,
		cfg:      cfg,
		out:      os.Stdout,
	}
}

// SetOutput redirects console output, mainly for tests.
func (o *Orchestrator) SetOutput(w io.Writer) *Orchestrator {
	o.out = w
	return o
}

// Run processes the input path against the byte budget and returns the
// finalized run report.
//
// The returned error is non-nil only for run-level problems (input path
// missing, context cancelled); per-file failures are recorded in the
// report and leave the error nil.
func (o *Orchestrator) Run(ctx context.Context, inputPath string, budgetBytes int64) (*models.RunReport, error) {
	if budgetBytes <= 0 {
		return nil, errs.Newf(errs.ErrInvalidSizeFormat, "budget must be positive, got %d bytes", budgetBytes)
	}

	files, err := o.resolveInputs(inputPath)
	if err != nil {
		return nil, err
	}

	report := models.NewRunReport(inputPath, budgetBytes, o.cfg.DryRun)

	for _, file := range files {
		if ctx.Err() != nil {
			report.Finalize()
			return report, errs.New(errs.ErrSplit, "run interrupted", ctx.Err())
		}

		item := o.processFile(ctx, file, budgetBytes)
		report.AddItem(item)

		switch item.Status {
		case models.StatusProcessed:
			fmt.Fprintf(o.out, "✓ %s: %d segment(s) in %s\n", file, item.SegmentCount, item.OutputDir)
		case models.StatusSkipped:
			fmt.Fprintf(o.out, "- %s: already under budget, no splitting needed\n", file)
		case models.StatusFailed:
			fmt.Fprintf(o.out, "✗ %s: %s\n", file, item.ErrorMsg)
		}
	}

	report.Finalize()
	return report, nil
}

// resolveInputs expands the input path into the ordered list of files
// to process. A directory contributes its immediate entries that match
// the extension allow-list; an explicit file is taken as-is.
func (o *Orchestrator) resolveInputs(inputPath string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, errs.New(errs.ErrConfig, "input path not accessible: "+inputPath, err)
	}

	if !info.IsDir() {
		return []string{inputPath}, nil
	}

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, errs.New(errs.ErrConfig, "failed to list directory "+inputPath, err)
	}

	// os.ReadDir returns entries sorted by name, so batches are deterministic
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if o.cfg.AllowsExtension(filepath.Ext(entry.Name())) {
			files = append(files, filepath.Join(inputPath, entry.Name()))
		}
	}

	if len(files) == 0 {
		fmt.Fprintf(o.out, "no media files found in %s (extensions: %s)\n",
			inputPath, strings.Join(o.cfg.SortedExtensions(), ", "))
	}

	return files, nil
}

// processFile runs the full pipeline for one file. Errors never escape:
// every outcome becomes a report item.
func (o *Orchestrator) processFile(ctx context.Context, sourcePath string, budgetBytes int64) models.FileItem {
	item := models.FileItem{Path: sourcePath}

	media, err := o.prober.Probe(ctx, sourcePath)
	if err != nil {
		return failedItem(item, err)
	}

	size, err := media.GetSize()
	if err != nil {
		return failedItem(item, err)
	}

	// Under-budget policy: skip the file entirely unless configured to
	// produce the trivial one-segment copy
	if size <= budgetBytes && !o.cfg.CopyUnderBudget {
		item.Status = models.StatusSkipped
		return item
	}

	stem, ext := splitName(sourcePath)
	outputDir := filepath.Join(filepath.Dir(sourcePath), stem+"_parts")

	plan, err := planner.NewPlanner(sourcePath, budgetBytes).
		SetSafetyFactor(o.cfg.SafetyFactor).
		PlanSegments(media, outputDir, stem, ext)
	if err != nil {
		return failedItem(item, err)
	}

	item.SegmentCount = len(plan)
	item.OutputDir = outputDir

	if o.cfg.DryRun {
		previews, err := o.splitter.DryRun(plan)
		if err != nil {
			return failedItem(item, err)
		}
		for _, preview := range previews {
			fmt.Fprintln(o.out, preview)
		}
		item.Status = models.StatusProcessed
		return item
	}

	if err := ensureOutputDir(outputDir); err != nil {
		return failedItem(item, err)
	}

	results, err := o.splitter.Split(ctx, plan)
	for _, result := range results {
		if result.Success {
			item.Outputs = append(item.Outputs, result.OutputPath)
		}
	}
	if err != nil {
		// Partial segment files stay on disk; the report names the
		// directory so the user can clean up or retry
		return failedItem(item, err)
	}

	item.Status = models.StatusProcessed
	return item
}

// ensureOutputDir creates the output directory, reusing an existing
// one. A non-directory entry at the path is an output collision.
func ensureOutputDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return errs.Newf(errs.ErrOutputCollision, "output path %s exists and is not a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return errs.New(errs.ErrOutputCollision, "cannot inspect output path "+path, err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return errs.New(errs.ErrOutputCollision, "failed to create output directory "+path, err)
	}
	return nil
}

// splitName splits a path's base name into stem and extension.
func splitName(path string) (stem, ext string) {
	base := filepath.Base(path)
	ext = filepath.Ext(base)
	return strings.TrimSuffix(base, ext), ext
}

func failedItem(item models.FileItem, err error) models.FileItem {
	item.Status = models.StatusFailed
	item.ErrorCode = errs.Code(err)
	item.ErrorMsg = err.Error()
	return item
}

// WrapProber lifts the concrete ffprobe prober to the MediaInfo-based
// interface the pipeline is written against.
func WrapProber(prober *ffprobe.Prober) Prober {
	return proberAdapter{prober}
}

type proberAdapter struct {
	prober *ffprobe.Prober
}

func (a proberAdapter) Probe(ctx context.Context, sourcePath string) (planner.MediaInfo, error) {
	return a.prober.Probe(ctx, sourcePath)
}
