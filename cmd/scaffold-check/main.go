package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ai-first-sdlc/scaffold-check/internal/cli"
	"github.com/ai-first-sdlc/scaffold-check/pkg/version"
)

var (
	// Global flags
	rootDir        string
	useGitRoot     bool
	configPath     string
	debugLogging   bool
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "scaffold-check",
	Short: "AI-First SDLC scaffold verification tool",
	Long: `Verify that a project carries the AI-First SDLC framework scaffold.

The minimal profile requires:
- docs/ and retrospectives/
- CLAUDE.md
- VERSION

The standard profile adds README.md, docs/feature-proposals/, CLAUDE.md
directives, .gitignore patterns for AI tools, and a git repository.

Run without a subcommand to verify the current project.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runVerify,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu to verify, install, and inspect the scaffold.`,
	RunE:  runInteractiveMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", ".", "Project root to check")
	rootCmd.PersistentFlags().BoolVar(&useGitRoot, "git-root", false, "Use the top-level directory of the enclosing git repository as the root")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: <root>/.scaffold-check.conf)")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; use defaults")

	addVerifyFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

// newContext builds the setup context from the global flags
func newContext() (*cli.SetupContext, error) {
	ctx, err := cli.NewSetupContext(cli.Options{
		Root:           rootDir,
		GitRoot:        useGitRoot,
		ConfigPath:     configPath,
		Debug:          debugLogging,
		NonInteractive: nonInteractive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize setup context: %w", err)
	}
	return ctx, nil
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	menu := cli.NewMenu(ctx)
	return menu.Show()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
