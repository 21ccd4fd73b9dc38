package export

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"exrconf/internal/descriptor"
	"exrconf/internal/experiment"
	"exrconf/internal/stats"
	"exrconf/internal/writer"
)

// Manifest is the JSON report of a generation run.
type Manifest struct {
	Definition experiment.Definition `json:"definition"`
	Report     writer.Report         `json:"report"`
	Stats      stats.Summary         `json:"stats"`
}

// JobsCSV writes one row per descriptor line, in algorithm file order.
// Schema: index,repetition,n,k,code,algorithm,descriptor
func JobsCSV(fs afero.Fs, def experiment.Definition, filename string) error {
	f, err := fs.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"index", "repetition", "n", "k", "code", "algorithm", "descriptor"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, job := range def.Jobs() {
		record := []string{
			strconv.Itoa(i),
			strconv.Itoa(job.Repetition),
			strconv.Itoa(job.Geometry.N),
			strconv.Itoa(job.Geometry.K),
			job.Code,
			experiment.CodeName(job.Code),
			strings.TrimSuffix(descriptor.For(job).Encode(), "\n"),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// JSON writes the manifest, indented.
func JSON(fs afero.Fs, m Manifest, filename string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, filename, data, 0644)
}
