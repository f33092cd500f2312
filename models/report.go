package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// File item statuses in a run report.
const (
	StatusProcessed = "processed"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// RunReport is the stable summary of one batch run, suitable for
// printing as JSON. One report covers every file the orchestrator
// touched, whether the input was a single file or a directory.
type RunReport struct {
	RunID string `json:"run_id"`
	Path  string `json:"path"`

	BudgetBytes int64 `json:"budget_bytes"`
	DryRun      bool  `json:"dry_run"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Summary ReportSummary `json:"summary"`
	Items   []FileItem    `json:"items"`
}

// ReportSummary counts items by status. Recomputed by Finalize.
type ReportSummary struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// FileItem records the outcome for a single input file.
type FileItem struct {
	Path string `json:"path"`

	Status    string `json:"status"`
	ErrorCode string `json:"error_code,omitempty"`
	ErrorMsg  string `json:"error_msg,omitempty"`

	SegmentCount int      `json:"segment_count"`
	OutputDir    string   `json:"output_dir,omitempty"`
	Outputs      []string `json:"outputs,omitempty"`
}

// NewRunReport creates a report with a fresh run ID and the start
// timestamp set to now.
func NewRunReport(path string, budgetBytes int64, dryRun bool) *RunReport {
	return &RunReport{
		RunID:       uuid.New().String(),
		Path:        path,
		BudgetBytes: budgetBytes,
		DryRun:      dryRun,
		StartedAt:   time.Now(),
	}
}

// AddItem appends a file outcome to the report.
func (r *RunReport) AddItem(item FileItem) {
	r.Items = append(r.Items, item)
}

// Finalize prepares the report for output:
//  1. timestamps normalized to UTC (stable RFC3339 "Z" rendering)
//  2. items stably sorted by path
//  3. summary recomputed from items
func (r *RunReport) Finalize() {
	r.FinishedAt = time.Now()
	r.StartedAt = r.StartedAt.UTC()
	r.FinishedAt = r.FinishedAt.UTC()

	sort.SliceStable(r.Items, func(i, j int) bool {
		return r.Items[i].Path < r.Items[j].Path
	})

	var s ReportSummary
	for _, it := range r.Items {
		switch it.Status {
		case StatusProcessed:
			s.Processed++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	r.Summary = s
}

// HasFailures reports whether any file in the run failed. Drives the
// process exit status: a batch with one bad file still completes, but
// the run as a whole exits non-zero.
func (r *RunReport) HasFailures() bool {
	for _, it := range r.Items {
		if it.Status == StatusFailed {
			return true
		}
	}
	return false
}
