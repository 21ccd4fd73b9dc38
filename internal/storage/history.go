package storage

import (
	"time"

	"github.com/google/uuid"

	"exrconf/internal/experiment"
	"exrconf/internal/stats"
	"exrconf/internal/writer"
)

type HistoryItem struct {
	ID         string                       `json:"id"`
	Timestamp  time.Time                    `json:"timestamp"`
	Root       string                       `json:"root"`
	ConfigDir  string                       `json:"config_dir"`
	Algorithms []string                     `json:"algorithms"`
	Geometries []experiment.ErasureGeometry `json:"geometries"`
	Summary    RunSummary                   `json:"summary"`
}

type RunSummary struct {
	Nodes int           `json:"nodes"`
	Jobs  int           `json:"jobs"`
	Files []string      `json:"files"`
	Stats stats.Summary `json:"stats"`
}

// NewHistoryItem describes a finished generation run. IDs are version 7
// UUIDs, so their string form sorts by creation time.
func NewHistoryItem(root string, def experiment.Definition, report writer.Report, s stats.Summary) (HistoryItem, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return HistoryItem{}, err
	}

	files := make([]string, len(report.Results))
	for i, r := range report.Results {
		files[i] = r.Path
	}

	return HistoryItem{
		ID:         id.String(),
		Timestamp:  time.Now(),
		Root:       root,
		ConfigDir:  def.Paths.ConfigDir,
		Algorithms: def.Algorithms,
		Geometries: def.Geometries,
		Summary: RunSummary{
			Nodes: report.Nodes,
			Jobs:  report.Jobs,
			Files: files,
			Stats: s,
		},
	}, nil
}
