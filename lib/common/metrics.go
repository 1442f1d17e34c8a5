package common

import (
	"fmt"
	"io"
	"time"

	"github.com/VictoriaMetrics/metrics"
	gometrics "github.com/rcrowley/go-metrics"
)

// --------------------------------------------------------------------------
// Process wide metrics (prometheus exposition)
// --------------------------------------------------------------------------

const (
	KindPreferences = "preferences"
	KindRecords     = "records"
)

var (
	// ConversionErrors counts converter failures swallowed by typed adapters
	ConversionErrors = metrics.NewCounter(`prefsync_conversion_errors_total`)

	rewriteDuration = metrics.NewHistogram(`prefsync_rewrite_duration_seconds`)
)

// WritePrometheus writes all process wide metrics in the prometheus text format
func WritePrometheus(w io.Writer) {
	metrics.WritePrometheus(w, false)
}

// --------------------------------------------------------------------------
// Per instance statistics
// --------------------------------------------------------------------------

// Stats is a point in time view of the counters of a single store.
type Stats struct {
	Changes       int64 // effective value changes
	Rewrites      int64 // successful full rewrites of the backing file
	RewriteErrors int64 // failed rewrites (logged and swallowed)
}

func (s Stats) String() string {
	return fmt.Sprintf("changes=%d rewrites=%d rewrite_errors=%d", s.Changes, s.Rewrites, s.RewriteErrors)
}

// Recorder tracks the statistics of one store instance in its own registry and
// mirrors them into the process wide counters of the store kind.
type Recorder struct {
	registry      gometrics.Registry
	changes       gometrics.Counter
	rewrites      gometrics.Counter
	rewriteErrors gometrics.Counter
	rewriteTimer  gometrics.Timer

	globalRewrites      *metrics.Counter
	globalRewriteErrors *metrics.Counter
}

// NewRecorder creates a recorder for a store of the given kind (KindPreferences or KindRecords).
func NewRecorder(kind string) *Recorder {
	r := gometrics.NewRegistry()
	return &Recorder{
		registry:            r,
		changes:             gometrics.GetOrRegisterCounter("changes", r),
		rewrites:            gometrics.GetOrRegisterCounter("rewrites", r),
		rewriteErrors:       gometrics.GetOrRegisterCounter("rewrite_errors", r),
		rewriteTimer:        gometrics.GetOrRegisterTimer("rewrite_duration", r),
		globalRewrites:      metrics.GetOrCreateCounter(fmt.Sprintf(`prefsync_%s_rewrites_total`, kind)),
		globalRewriteErrors: metrics.GetOrCreateCounter(fmt.Sprintf(`prefsync_%s_rewrite_errors_total`, kind)),
	}
}

// Changed records one effective change.
func (r *Recorder) Changed() {
	r.changes.Inc(1)
}

// Rewrite records the outcome of a full rewrite that started at start.
func (r *Recorder) Rewrite(start time.Time, err error) {
	r.rewriteTimer.UpdateSince(start)
	rewriteDuration.UpdateDuration(start)
	if err != nil {
		r.rewriteErrors.Inc(1)
		r.globalRewriteErrors.Inc()
		return
	}
	r.rewrites.Inc(1)
	r.globalRewrites.Inc()
}

// Stats returns the current counters.
func (r *Recorder) Stats() Stats {
	return Stats{
		Changes:       r.changes.Count(),
		Rewrites:      r.rewrites.Count(),
		RewriteErrors: r.rewriteErrors.Count(),
	}
}
