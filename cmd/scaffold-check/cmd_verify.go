package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ai-first-sdlc/scaffold-check/internal/common"
	"github.com/ai-first-sdlc/scaffold-check/internal/report"
)

var (
	verifyProfile     string
	verifyFormat      string
	verifyOutput      string
	verifyMetricsFile string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the project scaffold",
	Long: `Run every check of the selected profile against the project root.

Exits with status 1 when any error-severity check fails. Warning-severity
checks are reported but never fail verification.

Formats:
  text      - Human-readable output (default)
  json      - Machine-readable report
  markdown  - Report table for pull request comments
  yaml      - Machine-readable report`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	addVerifyFlags(verifyCmd)
	rootCmd.AddCommand(verifyCmd)
}

// addVerifyFlags registers the verification flags. The root command carries
// them too since it verifies when run without a subcommand.
func addVerifyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&verifyProfile, "profile", "p", "", "Check profile: minimal or standard (default: from config)")
	cmd.Flags().StringVarP(&verifyFormat, "format", "f", "", fmt.Sprintf("Report format: %s (default: from config)", strings.Join(report.Formats(), ", ")))
	cmd.Flags().StringVarP(&verifyOutput, "output", "o", "", "Write the report to a file")
	cmd.Flags().StringVar(&verifyMetricsFile, "metrics-file", "", "Write Prometheus metrics to a textfile")
}

func runVerify(cmd *cobra.Command, args []string) error {
	if verifyFormat != "" {
		if err := common.ValidateOneOf("format", verifyFormat, report.Formats()); err != nil {
			return err
		}
	}

	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	opts := ctx.VerifyOptions(verifyProfile, verifyFormat, verifyOutput, verifyMetricsFile)
	return ctx.RunVerify(opts)
}
