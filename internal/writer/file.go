package writer

import (
	"bytes"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"
)

// Kind identifies which artifact a Result describes.
type Kind string

const (
	KindAddresses    Kind = "addresses"
	KindAlgorithms   Kind = "algorithms"
	KindConfig       Kind = "config"
	KindConfigFormat Kind = "config_format"
)

// Result describes one written file.
type Result struct {
	Kind    Kind          `json:"kind"`
	Path    string        `json:"path"`
	Bytes   int           `json:"bytes"`
	Lines   int           `json:"lines"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// writeFile truncates and rewrites path. The parent directory must exist.
// A failed write leaves whatever was flushed.
func writeFile(fs afero.Fs, kind Kind, path string, data []byte) (Result, error) {
	start := time.Now()

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return Result{}, &IOFailure{Op: "open", Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return Result{}, &IOFailure{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return Result{}, &IOFailure{Op: "close", Path: path, Err: err}
	}

	res := Result{
		Kind:    kind,
		Path:    path,
		Bytes:   len(data),
		Lines:   bytes.Count(data, []byte{'\n'}),
		Elapsed: time.Since(start),
	}
	slog.Debug("wrote file", "kind", kind, "path", path, "bytes", res.Bytes, "lines", res.Lines)
	return res, nil
}
