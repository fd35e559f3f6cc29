package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ai-first-sdlc/scaffold-check/internal/scaffold"
)

// NewReportRegistry builds a registry holding the outcome of one
// verification run. A fresh registry per run keeps the textfile free of
// process and Go runtime collectors.
func NewReportRegistry(report *scaffold.Report) *prometheus.Registry {
	registry := prometheus.NewRegistry()

	// 1 when the check passed, 0 otherwise. Watch for: any 0 with severity="error".
	checkPassed := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scaffold_check_passed",
			Help: "Whether a scaffold check passed (1) or not (0)",
		},
		[]string{"check", "severity"},
	)

	// Paths a check could not find. Watch for: growth after repository restructuring.
	missingPaths := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scaffold_check_missing_paths",
			Help: "Number of required paths a scaffold check found missing",
		},
		[]string{"check"},
	)

	checksFailed := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scaffold_checks_failed",
		Help: "Number of error-severity scaffold checks that failed",
	})

	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scaffold_verify_timestamp_seconds",
		Help: "Unix time the verification run started",
	})

	registry.MustRegister(checkPassed, missingPaths, checksFailed, lastRun)

	for _, res := range report.Results {
		passed := 0.0
		if res.Passed() {
			passed = 1
		}
		checkPassed.WithLabelValues(res.Check.Name, res.Check.Severity.String()).Set(passed)
		missingPaths.WithLabelValues(res.Check.Name).Set(float64(len(res.Missing)))
	}
	checksFailed.Set(float64(report.Failed()))
	lastRun.Set(float64(report.StartedAt.UnixNano()) / 1e9)

	return registry
}

// WriteMetricsFile writes the report in the Prometheus text format for the
// node_exporter textfile collector. The write is atomic.
func WriteMetricsFile(path string, report *scaffold.Report) error {
	if err := prometheus.WriteToTextfile(path, NewReportRegistry(report)); err != nil {
		return fmt.Errorf("failed to write metrics file %s: %w", path, err)
	}
	return nil
}
