package writer

import (
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"exrconf/internal/descriptor"
	"exrconf/internal/experiment"
)

// AlgorithmDescriptorEncoder writes one descriptor line per repair job.
type AlgorithmDescriptorEncoder struct {
	fs  afero.Fs
	def experiment.Definition
}

func NewAlgorithmDescriptorEncoder(fs afero.Fs, def experiment.Definition) *AlgorithmDescriptorEncoder {
	return &AlgorithmDescriptorEncoder{fs: fs, def: def}
}

// Descriptors returns the encoded jobs in file order.
func (e *AlgorithmDescriptorEncoder) Descriptors() []descriptor.Descriptor {
	jobs := e.def.Jobs()
	out := make([]descriptor.Descriptor, len(jobs))
	for i, j := range jobs {
		out[i] = descriptor.For(j)
	}
	return out
}

// Render returns the header count followed by every descriptor line. The
// header is the number of lines that follow, by construction.
func (e *AlgorithmDescriptorEncoder) Render() []byte {
	ds := e.Descriptors()

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(ds)))
	sb.WriteByte('\n')
	for _, d := range ds {
		sb.WriteString(d.Encode())
	}
	return []byte(sb.String())
}

func (e *AlgorithmDescriptorEncoder) Write(path string) (Result, error) {
	return writeFile(e.fs, KindAlgorithms, path, e.Render())
}
