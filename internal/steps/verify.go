package steps

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ai-first-sdlc/scaffold-check/internal/observability"
	"github.com/ai-first-sdlc/scaffold-check/internal/report"
	"github.com/ai-first-sdlc/scaffold-check/internal/scaffold"
	"github.com/ai-first-sdlc/scaffold-check/internal/system"
	"github.com/ai-first-sdlc/scaffold-check/internal/ui"
)

// VerifyOptions selects what to verify and where to send the results
type VerifyOptions struct {
	Root        string
	Profile     string
	ExtraPaths  []string
	Format      string    // report format; text is printed through the UI only
	OutputPath  string    // write the rendered report here instead of Stdout
	MetricsFile string    // optional Prometheus textfile
	Stdout      io.Writer // destination for non-text reports without OutputPath
}

// ErrVerificationFailed is wrapped by the error RunVerification returns when
// an error-severity check fails.
var ErrVerificationFailed = errors.New("scaffold verification failed")

// displayResults prints one line per check
func displayResults(u *ui.UI, r *scaffold.Report) {
	for _, res := range r.Results {
		switch res.Status {
		case scaffold.StatusPass:
			u.CheckPassed(res.Check.Name)
		case scaffold.StatusWarn:
			u.CheckWarned(res.Check.Name, res.Message)
		default:
			u.CheckFailed(res.Check.Name, res.Message)
		}
	}
}

// writeOutputs renders the report in the requested format and writes the
// metrics textfile
func writeOutputs(opts VerifyOptions, fs system.FileSystemManager, u *ui.UI, r *scaffold.Report) error {
	format := opts.Format
	if format == "" {
		format = report.FormatText
	}

	if format != report.FormatText || opts.OutputPath != "" {
		data, err := report.Render(format, r)
		if err != nil {
			return err
		}

		if opts.OutputPath != "" {
			if err := fs.WriteFile(opts.OutputPath, data, 0644, true); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			u.Infof("Report written to %s", opts.OutputPath)
		} else {
			out := opts.Stdout
			if out == nil {
				out = os.Stdout
			}
			if _, err := out.Write(data); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		}
	}

	if opts.MetricsFile != "" {
		if err := observability.WriteMetricsFile(opts.MetricsFile, r); err != nil {
			return err
		}
		u.Infof("Metrics written to %s", opts.MetricsFile)
	}

	return nil
}

// RunVerification executes every check of the selected profile and reports
// the outcome. It returns the report even when verification fails; the error
// wraps ErrVerificationFailed in that case.
func RunVerification(opts VerifyOptions, fs system.FileSystemManager, u *ui.UI, log *zap.Logger) (*scaffold.Report, error) {
	suite, err := scaffold.SuiteForProfile(opts.Profile, opts.ExtraPaths)
	if err != nil {
		return nil, err
	}

	u.Header("Scaffold Verification")
	u.Infof("Project root: %s", opts.Root)
	u.Infof("Profile: %s (%d checks)", suite.Profile, len(suite.Names()))

	u.Step("Running Checks")
	r := scaffold.NewVerifier(fs, log).Run(opts.Root, suite)
	displayResults(u, r)

	u.Print("")
	u.Separator()

	if err := writeOutputs(opts, fs, u, r); err != nil {
		return r, err
	}

	if !r.OK() {
		u.Error("Scaffold verification FAILED")
		u.Info("Resolve the issues below, or run 'scaffold-check init' to install the missing scaffold")
		u.Print("")
		i := 0
		for _, res := range r.Results {
			if res.Status != scaffold.StatusFail {
				continue
			}
			i++
			u.Errorf("%d. %s: %s", i, res.Check.Name, res.Message)
		}
		return r, fmt.Errorf("%w with %d error(s)", ErrVerificationFailed, r.Failed())
	}

	if r.Warnings() > 0 {
		u.Warningf("%d check(s) passed with warnings", r.Warnings())
	}
	u.Successf("✓ All scaffold checks PASSED (%s)", report.Summary(r))

	return r, nil
}
