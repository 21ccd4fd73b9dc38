package stats

import (
	"time"

	"exrconf/internal/writer"
)

// Recorder aggregates the files written by a generation run.
type Recorder struct {
	Files int
	Bytes int
	Lines int

	writes *durationHistogram
}

func NewRecorder() *Recorder {
	return &Recorder{writes: newDurationHistogram()}
}

// Observe implements writer.Observer.
func (r *Recorder) Observe(res writer.Result) {
	r.Files++
	r.Bytes += res.Bytes
	r.Lines += res.Lines
	r.writes.Record(res.Elapsed)
}

// Summary is a snapshot of a Recorder.
type Summary struct {
	Files    int           `json:"files"`
	Bytes    int           `json:"bytes"`
	Lines    int           `json:"lines"`
	P50Write time.Duration `json:"p50_write_ns"`
	MaxWrite time.Duration `json:"max_write_ns"`
}

func (r *Recorder) Summary() Summary {
	s := Summary{Files: r.Files, Bytes: r.Bytes, Lines: r.Lines}
	if r.writes.Count() > 0 {
		s.P50Write = r.writes.Quantile(50)
		s.MaxWrite = r.writes.Max()
	}
	return s
}
