package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"exrconf/internal/writer"
)

func TestRecorder_empty(t *testing.T) {
	assert.Equal(t, Summary{}, NewRecorder().Summary())
}

func TestRecorder_observe(t *testing.T) {
	r := NewRecorder()
	r.Observe(writer.Result{Bytes: 10, Lines: 2, Elapsed: 100 * time.Microsecond})
	r.Observe(writer.Result{Bytes: 30, Lines: 5, Elapsed: 300 * time.Microsecond})
	r.Observe(writer.Result{Bytes: 5, Lines: 1, Elapsed: 0})

	s := r.Summary()

	assert.Equal(t, 3, s.Files)
	assert.Equal(t, 45, s.Bytes)
	assert.Equal(t, 8, s.Lines)
	assert.InDelta(t, float64(300*time.Microsecond), float64(s.MaxWrite), float64(time.Microsecond))
	assert.InDelta(t, float64(100*time.Microsecond), float64(s.P50Write), float64(time.Microsecond))
}
