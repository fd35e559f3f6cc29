// Package report renders verification reports for files and CI logs.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ai-first-sdlc/scaffold-check/internal/scaffold"
	"github.com/ai-first-sdlc/scaffold-check/pkg/version"
)

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// ErrUnknownFormat is returned for a format with no renderer.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatMarkdown, FormatYAML}
}

type documentCheck struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Severity    string   `json:"severity" yaml:"severity"`
	Status      string   `json:"status" yaml:"status"`
	Missing     []string `json:"missing" yaml:"missing"`
	Message     string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// document is the structured form shared by the JSON and YAML formats
type document struct {
	Tool       string          `json:"tool_version" yaml:"tool_version"`
	RunID      string          `json:"run_id" yaml:"run_id"`
	Root       string          `json:"root" yaml:"root"`
	Profile    string          `json:"profile" yaml:"profile"`
	StartedAt  time.Time       `json:"started_at" yaml:"started_at"`
	DurationMS int64           `json:"duration_ms" yaml:"duration_ms"`
	OK         bool            `json:"ok" yaml:"ok"`
	Passed     int             `json:"passed" yaml:"passed"`
	Failed     int             `json:"failed" yaml:"failed"`
	Warnings   int             `json:"warnings" yaml:"warnings"`
	Checks     []documentCheck `json:"checks" yaml:"checks"`
}

// Render formats a report. Text output mirrors what the CLI prints.
func Render(format string, r *scaffold.Report) ([]byte, error) {
	switch format {
	case FormatText:
		return renderText(r), nil
	case FormatJSON:
		return renderJSON(r)
	case FormatMarkdown:
		return renderMarkdown(r), nil
	case FormatYAML:
		return renderYAML(r)
	default:
		return nil, fmt.Errorf("%w %q (expected one of: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// Summary is the one-line outcome shared by every format.
func Summary(r *scaffold.Report) string {
	return fmt.Sprintf("%d passed, %d failed, %d warnings", r.Passed(), r.Failed(), r.Warnings())
}

func newDocument(r *scaffold.Report) document {
	out := document{
		Tool:       version.Short(),
		RunID:      r.RunID,
		Root:       r.Root,
		Profile:    r.Profile,
		StartedAt:  r.StartedAt.UTC(),
		DurationMS: r.Duration.Milliseconds(),
		OK:         r.OK(),
		Passed:     r.Passed(),
		Failed:     r.Failed(),
		Warnings:   r.Warnings(),
		Checks:     make([]documentCheck, 0, len(r.Results)),
	}

	for _, res := range r.Results {
		missing := res.Missing
		if missing == nil {
			missing = []string{}
		}
		out.Checks = append(out.Checks, documentCheck{
			Name:        res.Check.Name,
			Description: res.Check.Description,
			Severity:    res.Check.Severity.String(),
			Status:      string(res.Status),
			Missing:     missing,
			Message:     res.Message,
		})
	}

	return out
}

func renderJSON(r *scaffold.Report) ([]byte, error) {
	data, err := json.MarshalIndent(newDocument(r), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return append(data, '\n'), nil
}

func renderYAML(r *scaffold.Report) ([]byte, error) {
	data, err := yaml.Marshal(newDocument(r))
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}

func statusMark(s scaffold.Status) string {
	switch s {
	case scaffold.StatusPass:
		return "✓"
	case scaffold.StatusWarn:
		return "!"
	default:
		return "✗"
	}
}

func renderText(r *scaffold.Report) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Scaffold verification (%s profile) in %s\n", r.Profile, r.Root)
	for _, res := range r.Results {
		if res.Message == "" {
			fmt.Fprintf(&b, "  %s %s\n", statusMark(res.Status), res.Check.Name)
			continue
		}
		fmt.Fprintf(&b, "  %s %s: %s\n", statusMark(res.Status), res.Check.Name, res.Message)
	}
	fmt.Fprintf(&b, "Results: %s\n", Summary(r))
	return b.Bytes()
}

func renderMarkdown(r *scaffold.Report) []byte {
	var b bytes.Buffer
	fmt.Fprintln(&b, "# Scaffold Verification Report")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- **Root:** `%s`\n", r.Root)
	fmt.Fprintf(&b, "- **Profile:** %s\n", r.Profile)
	fmt.Fprintf(&b, "- **Run:** %s\n", r.RunID)
	fmt.Fprintf(&b, "- **Tool:** scaffold-check %s\n", version.Short())
	fmt.Fprintf(&b, "- **Started:** %s\n", r.StartedAt.UTC().Format(time.RFC3339))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Check | Status | Details |")
	fmt.Fprintln(&b, "|---|---|---|")
	for _, res := range r.Results {
		details := strings.ReplaceAll(res.Message, "|", `\|`)
		if details == "" {
			details = res.Check.Description
		}
		fmt.Fprintf(&b, "| %s | %s %s | %s |\n", res.Check.Name, statusMark(res.Status), res.Status, details)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "**Result:** %s\n", Summary(r))
	return b.Bytes()
}
