package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"exrconf/internal/experiment"
	"exrconf/internal/stats"
	"exrconf/internal/storage"
	"exrconf/internal/writer"
)

const rule = "======================================================================\n"

func PrintHeader(w io.Writer, root string, def experiment.Definition) {
	fmt.Fprintf(w, "\n⚙️  GENERATING SIMULATOR CONFIG\n")
	fmt.Fprint(w, rule)
	fmt.Fprintf(w, "Root        : %s\n", root)
	fmt.Fprintf(w, "Config dir  : %s\n", def.Paths.ConfigDir)
	fmt.Fprintf(w, "Nodes       : %d\n", len(def.Nodes))
	fmt.Fprintf(w, "Algorithms  : %s\n", algorithmList(def.Algorithms))
	fmt.Fprintf(w, "Geometries  : %s\n", geometryList(def.Geometries))
	fmt.Fprintf(w, "Repetitions : %d (run id %d)\n", def.Repetitions, def.Knobs.RunID)
	fmt.Fprint(w, rule+"\n")
}

func PrintSummary(w io.Writer, report writer.Report, s stats.Summary) {
	fmt.Fprintf(w, "📄 FILES WRITTEN\n")
	fmt.Fprint(w, rule)
	for _, r := range report.Results {
		fmt.Fprintf(w, "   %-14s %-32s %6d B %5d lines\n", r.Kind, r.Path, r.Bytes, r.Lines)
	}
	fmt.Fprintf(w, "\nNodes       : %d\n", report.Nodes)
	fmt.Fprintf(w, "Jobs        : %d\n", report.Jobs)
	fmt.Fprintf(w, "Total       : %d files, %d bytes, %d lines\n", s.Files, s.Bytes, s.Lines)
	fmt.Fprintf(w, "Write time  : p50 %s, max %s\n", s.P50Write, s.MaxWrite)
	fmt.Fprint(w, rule)
}

func PrintHistory(w io.Writer, items []storage.HistoryItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No history found. Run a generation to record one.")
		return
	}
	fmt.Fprintf(w, "%-36s  %-19s  %-12s  %5s  %5s  %s\n", "ID", "TIME", "CONFIG DIR", "NODES", "JOBS", "ALGORITHMS")
	for _, it := range items {
		fmt.Fprintf(w, "%-36s  %-19s  %-12s  %5d  %5d  %s\n",
			it.ID,
			it.Timestamp.Format(time.DateTime),
			it.ConfigDir,
			it.Summary.Nodes,
			it.Summary.Jobs,
			algorithmList(it.Algorithms),
		)
	}
}

func algorithmList(codes []string) string {
	if len(codes) == 0 {
		return "(none)"
	}
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("%s=%s", c, experiment.CodeName(c))
	}
	return strings.Join(parts, " ")
}

func geometryList(gs []experiment.ErasureGeometry) string {
	if len(gs) == 0 {
		return "(none)"
	}
	parts := make([]string, len(gs))
	for i, g := range gs {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
