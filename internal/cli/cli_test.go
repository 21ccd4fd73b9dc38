package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"exrconf/internal/experiment"
	"exrconf/internal/stats"
	"exrconf/internal/storage"
	"exrconf/internal/writer"
)

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer
	def := experiment.Default()
	def.Algorithms = []string{"b", "z"}

	PrintHeader(&buf, "/tmp/run", def)

	out := buf.String()
	assert.Contains(t, out, "Root        : /tmp/run")
	assert.Contains(t, out, "Nodes       : 17")
	assert.Contains(t, out, "b=ExploitRepair z=unknown")
	assert.Contains(t, out, "(6,4)")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	report := writer.Report{
		Nodes: 3,
		Jobs:  2,
		Results: []writer.Result{
			{Kind: writer.KindAddresses, Path: "config/addresses.txt", Bytes: 40, Lines: 4},
		},
	}

	PrintSummary(&buf, report, stats.Summary{Files: 1, Bytes: 40, Lines: 4, MaxWrite: time.Millisecond})

	out := buf.String()
	assert.Contains(t, out, "config/addresses.txt")
	assert.Contains(t, out, "Jobs        : 2")
	assert.Contains(t, out, "1 files, 40 bytes, 4 lines")
	assert.Contains(t, out, "max 1ms")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	PrintHistory(&buf, nil)
	assert.Contains(t, buf.String(), "No history found")

	buf.Reset()
	PrintHistory(&buf, []storage.HistoryItem{{
		ID:         "0192",
		Timestamp:  time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC),
		ConfigDir:  "config/",
		Algorithms: []string{"e"},
		Summary:    storage.RunSummary{Nodes: 17, Jobs: 1},
	}})
	assert.Contains(t, buf.String(), "2026-10-19 08:30:00")
	assert.Contains(t, buf.String(), "e=Exr")
}
