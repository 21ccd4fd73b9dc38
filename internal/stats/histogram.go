package stats

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// durationHistogram records durations in microseconds.
type durationHistogram struct {
	hist *hdrhistogram.Histogram
}

func newDurationHistogram() *durationHistogram {
	// 1us to 1min, 3 significant figures
	return &durationHistogram{hist: hdrhistogram.New(1, int64(time.Minute/time.Microsecond), 3)}
}

func (h *durationHistogram) Record(d time.Duration) {
	us := d.Microseconds()
	if us < 1 {
		us = 1
	}
	// Values past the highest trackable one are dropped.
	_ = h.hist.RecordValue(us)
}

func (h *durationHistogram) Quantile(q float64) time.Duration {
	return time.Duration(h.hist.ValueAtQuantile(q)) * time.Microsecond
}

func (h *durationHistogram) Max() time.Duration {
	return time.Duration(h.hist.Max()) * time.Microsecond
}

func (h *durationHistogram) Count() int64 {
	return h.hist.TotalCount()
}
