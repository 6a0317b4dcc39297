package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	atsAnalysisStartedTotal   atomic.Uint64
	atsAnalysisCompletedTotal atomic.Uint64
	atsAnalysisFailedTotal    atomic.Uint64
	summaryGeneratedTotal     atomic.Uint64
	resumeEditsAppliedTotal   atomic.Uint64

	atsAnalysisDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncATSAnalysisStarted increments the started counter.
func IncATSAnalysisStarted() {
	atsAnalysisStartedTotal.Add(1)
}

// IncATSAnalysisCompleted increments the completed counter.
func IncATSAnalysisCompleted() {
	atsAnalysisCompletedTotal.Add(1)
}

// IncATSAnalysisFailed increments the failed counter.
func IncATSAnalysisFailed() {
	atsAnalysisFailedTotal.Add(1)
}

// IncSummaryGenerated increments the summary counter.
func IncSummaryGenerated() {
	summaryGeneratedTotal.Add(1)
}

// AddResumeEditsApplied records a batch of applied edit commands.
func AddResumeEditsApplied(n int) {
	if n <= 0 {
		return
	}
	resumeEditsAppliedTotal.Add(uint64(n))
}

// ObserveATSAnalysisDurationMs records an analysis duration in milliseconds.
func ObserveATSAnalysisDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	atsAnalysisDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "ats_analysis_started_total", "Total ATS analyses started", atsAnalysisStartedTotal.Load())
	writeCounter(&buf, "ats_analysis_completed_total", "Total ATS analyses completed", atsAnalysisCompletedTotal.Load())
	writeCounter(&buf, "ats_analysis_failed_total", "Total ATS analyses failed", atsAnalysisFailedTotal.Load())
	writeCounter(&buf, "summary_generated_total", "Total AI summaries generated", summaryGeneratedTotal.Load())
	writeCounter(&buf, "resume_edits_applied_total", "Total resume edit commands applied", resumeEditsAppliedTotal.Load())
	writeHistogram(&buf, "ats_analysis_duration_ms", "ATS analysis duration in milliseconds", atsAnalysisDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
