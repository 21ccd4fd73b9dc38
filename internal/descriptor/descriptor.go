// Package descriptor encodes repair jobs into the simulator's positional
// algorithm-file lines.
//
// Every schema is its own type carrying exactly the fields it emits. The
// leading 4 or 5 after the code is a sub-format selector read by the
// simulator's parser; it is part of each schema and is never derived from
// the number of trailing fields. k is always written before n.
package descriptor

import (
	"strconv"
	"strings"

	"exrconf/internal/experiment"
)

// Descriptor is one encoded job line.
type Descriptor interface {
	Code() string
	// Encode returns the line including its trailing newline.
	Encode() string
}

// Exr is the probe-based exploit repair ("e").
type Exr struct {
	Geometry     experiment.ErasureGeometry
	RunID        int
	ExploitTasks int
}

func (d Exr) Code() string { return "e" }

func (d Exr) Encode() string {
	return line(d.Code(), 4, d.Geometry, d.RunID, d.ExploitTasks)
}

// MutiPipeline is the pipelined repair ("v").
type MutiPipeline struct {
	Geometry        experiment.ErasureGeometry
	RunID           int
	EvaluationTasks int
}

func (d MutiPipeline) Code() string { return "v" }

func (d MutiPipeline) Encode() string {
	return line(d.Code(), 4, d.Geometry, d.RunID, d.EvaluationTasks)
}

// ExploitRepair is the bandwidth-aware repair ("b") with an optional even
// distribution of repair traffic.
type ExploitRepair struct {
	Geometry       experiment.ErasureGeometry
	RunID          int
	EvenDistribute bool
	MinBandwidth   int
}

func (d ExploitRepair) Code() string { return "b" }

func (d ExploitRepair) Encode() string {
	balance := 0
	if d.EvenDistribute {
		balance = 1
	}
	return line(d.Code(), 5, d.Geometry, d.RunID, balance, d.MinBandwidth)
}

// PPR is the bandwidth-floor variant ("j").
type PPR struct {
	Geometry     experiment.ErasureGeometry
	RunID        int
	MinBandwidth int
}

func (d PPR) Code() string { return "j" }

func (d PPR) Encode() string {
	return line(d.Code(), 4, d.Geometry, d.RunID, d.MinBandwidth)
}

// Fallback carries any other code, known (f, p, r) or not, through the
// default schema, which has the same shape as PPR.
type Fallback struct {
	Letter       string
	Geometry     experiment.ErasureGeometry
	RunID        int
	MinBandwidth int
}

func (d Fallback) Code() string { return d.Letter }

func (d Fallback) Encode() string {
	return line(d.Letter, 4, d.Geometry, d.RunID, d.MinBandwidth)
}

// For picks the schema for the job's code. It never fails: codes without
// a schema of their own become a Fallback.
func For(job experiment.RepairJob) Descriptor {
	g, k := job.Geometry, job.Knobs
	switch job.Code {
	case "e":
		return Exr{Geometry: g, RunID: k.RunID, ExploitTasks: k.ExploitTasks}
	case "v":
		return MutiPipeline{Geometry: g, RunID: k.RunID, EvaluationTasks: k.EvaluationTasks}
	case "b":
		return ExploitRepair{Geometry: g, RunID: k.RunID, EvenDistribute: k.EvenDistribute, MinBandwidth: k.MinBandwidth}
	case "j":
		return PPR{Geometry: g, RunID: k.RunID, MinBandwidth: k.MinBandwidth}
	default:
		return Fallback{Letter: job.Code, Geometry: g, RunID: k.RunID, MinBandwidth: k.MinBandwidth}
	}
}

// IsFallback reports whether code has no dedicated schema.
func IsFallback(code string) bool {
	_, ok := For(experiment.RepairJob{Code: code}).(Fallback)
	return ok
}

func line(code string, selector int, g experiment.ErasureGeometry, fields ...int) string {
	var sb strings.Builder
	sb.WriteString(code)
	for _, v := range append([]int{selector, g.K, g.N}, fields...) {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('\n')
	return sb.String()
}
