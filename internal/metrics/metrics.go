package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	StudioOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "amareke_studio_ops_total",
		Help: "Total studio operations by kind",
	}, []string{"op"})
	PostScores = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "amareke_post_score",
		Help:    "Heuristic post scores by dimension",
		Buckets: prometheus.LinearBuckets(10, 10, 10),
	}, []string{"dimension"})
	PacingWait = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "amareke_pacing_wait_seconds",
		Help:    "Time spent waiting on the generation pacer",
		Buckets: prometheus.DefBuckets,
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "amareke_command_runs_total",
		Help: "Total CLI command runs",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "amareke_command_errors_total",
		Help: "Total CLI command errors",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(StudioOps, PostScores, PacingWait, CommandRuns, CommandErrors)
}

// StartServer serves /metrics and /health on addr (e.g. ":9090") in the background.
// An empty addr disables the server.
func StartServer(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, mux) }()
}

// IncOp counts one studio operation.
func IncOp(op string) { StudioOps.WithLabelValues(op).Inc() }

// ObserveScore records every dimension of a score.
func ObserveScore(hook, clarity, structure, cta, total int) {
	PostScores.WithLabelValues("hook").Observe(float64(hook))
	PostScores.WithLabelValues("clarity").Observe(float64(clarity))
	PostScores.WithLabelValues("structure").Observe(float64(structure))
	PostScores.WithLabelValues("cta").Observe(float64(cta))
	PostScores.WithLabelValues("total").Observe(float64(total))
}

// ObservePacing records how long a caller waited on the pacer.
func ObservePacing(start time.Time) {
	PacingWait.Observe(time.Since(start).Seconds())
}

func IncCommandRun(cmd string)   { CommandRuns.WithLabelValues(cmd).Inc() }
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
