package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ai-first-sdlc/scaffold-check/internal/scaffold"
)

func sampleReport() *scaffold.Report {
	return &scaffold.Report{
		RunID:     "run-1",
		Root:      "/tmp/proj",
		Profile:   scaffold.ProfileMinimal,
		StartedAt: time.Unix(1760000000, 0),
		Results: []scaffold.Result{
			{Check: scaffold.FrameworkSetupCheck(), Status: scaffold.StatusPass},
			{Check: scaffold.ProjectStructureCheck(), Status: scaffold.StatusPass},
			{
				Check:   scaffold.VersionFileCheck(),
				Status:  scaffold.StatusFail,
				Missing: []string{scaffold.VersionFile},
				Message: "missing: VERSION",
			},
		},
	}
}

// TestNewReportRegistry verifies each check is exported with its outcome.
func TestNewReportRegistry(t *testing.T) {
	registry := NewReportRegistry(sampleReport())

	expected := `
# HELP scaffold_check_passed Whether a scaffold check passed (1) or not (0)
# TYPE scaffold_check_passed gauge
scaffold_check_passed{check="framework-setup",severity="error"} 1
scaffold_check_passed{check="project-structure",severity="error"} 1
scaffold_check_passed{check="version-file",severity="error"} 0
# HELP scaffold_checks_failed Number of error-severity scaffold checks that failed
# TYPE scaffold_checks_failed gauge
scaffold_checks_failed 1
`
	if err := testutil.GatherAndCompare(registry, strings.NewReader(expected),
		"scaffold_check_passed", "scaffold_checks_failed"); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}

	n, err := testutil.GatherAndCount(registry, "scaffold_check_missing_paths")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if n != 3 {
		t.Errorf("scaffold_check_missing_paths series = %d, want 3", n)
	}
}

// TestWriteMetricsFile verifies the textfile is written in exposition format.
func TestWriteMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaffold.prom")

	if err := WriteMetricsFile(path, sampleReport()); err != nil {
		t.Fatalf("WriteMetricsFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	body := string(data)
	for _, want := range []string{
		`scaffold_check_missing_paths{check="version-file"} 1`,
		"# TYPE scaffold_verify_timestamp_seconds gauge",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics file missing %q:\n%s", want, body)
		}
	}
}

func TestWriteMetricsFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "scaffold.prom")
	if err := WriteMetricsFile(path, sampleReport()); err == nil {
		t.Error("WriteMetricsFile() into a missing directory error = nil, want error")
	}
}
