/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Training report creation and persistence for the Akaylee RegLearn
engine. Stamps each report with a UUID and creation time, writes timestamped JSON
files to the output directory, and renders a console summary table.
*/

package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
)

// NewReport creates an empty, UUID-stamped training report for config.
func NewReport(config *interfaces.TrainConfig) *interfaces.TrainReport {
	return &interfaces.TrainReport{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Config:    config,
	}
}

// WriteReport marshals the report to indented JSON in a timestamped file
// under dir, returning the file path.
func WriteReport(dir string, report *interfaces.TrainReport) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	timestamp := report.CreatedAt.Format("2006-01-02_15-04-05")
	path := filepath.Join(dir, fmt.Sprintf("reglearn_report_%s.json", timestamp))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// PrintSummary renders a human-readable result table to w.
func PrintSummary(w io.Writer, report *interfaces.TrainReport) {
	fmt.Fprintf(w, "Training report %s (%s)\n", report.ID, report.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "%-14s %8s %8s %10s %10s %10s %6s\n",
		"LANGUAGE", "TREE", "STATES", "MINIMAL", "ACCURACY", "EQUIV", "TIME")
	for _, r := range report.Results {
		fmt.Fprintf(w, "%-14s %8d %8d %10d %9.1f%% %10v %6s\n",
			r.Language, r.TreeNodes, r.RawStates, r.MinimalStates,
			r.Accuracy*100, r.Equivalent, r.Duration.Round(time.Millisecond))
	}
}
