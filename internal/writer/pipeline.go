package writer

import (
	"log/slog"

	"github.com/spf13/afero"

	"exrconf/internal/experiment"
)

// Observer is told about every file the pipeline writes.
type Observer interface {
	Observe(Result)
}

// Report is what a generation run produced.
type Report struct {
	Results []Result `json:"results"`
	Nodes   int      `json:"nodes"`
	Jobs    int      `json:"jobs"`
}

// Bytes sums the size of every written file.
func (r Report) Bytes() int {
	total := 0
	for _, res := range r.Results {
		total += res.Bytes
	}
	return total
}

// Generate writes the address file, the algorithm file, the master config
// and its format documentation, in that order. The first failure stops the
// run; the returned report lists the files written before it.
func Generate(fs afero.Fs, def experiment.Definition, observers ...Observer) (Report, error) {
	report := Report{Nodes: len(def.Nodes), Jobs: def.JobCount()}

	master := NewMasterConfigComposer(fs, def)
	steps := []struct {
		path  string
		write func(string) (Result, error)
	}{
		{def.Paths.Address(), NewAddressCatalog(fs, def.Nodes).Write},
		{def.Paths.Algorithm(), NewAlgorithmDescriptorEncoder(fs, def).Write},
		{def.Paths.Config(), master.Write},
		{def.Paths.ConfigFormat(), master.WriteFormat},
	}

	for _, step := range steps {
		res, err := step.write(step.path)
		if err != nil {
			slog.Error("generation aborted", "path", step.path, "error", err)
			return report, err
		}
		report.Results = append(report.Results, res)
		for _, o := range observers {
			o.Observe(res)
		}
	}

	slog.Info("generation complete", "files", len(report.Results), "nodes", report.Nodes, "jobs", report.Jobs)
	return report, nil
}
