// Package cli provides the command-line interface layer for scaffold-check,
// including context construction, menu-driven interaction, and command
// dispatch. It bridges user commands to the verification and installation
// steps.
package cli

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ai-first-sdlc/scaffold-check/internal/config"
	"github.com/ai-first-sdlc/scaffold-check/internal/observability"
	"github.com/ai-first-sdlc/scaffold-check/internal/steps"
	"github.com/ai-first-sdlc/scaffold-check/internal/system"
	"github.com/ai-first-sdlc/scaffold-check/internal/ui"
)

// Options are the global settings shared by every command
type Options struct {
	Root           string // project root; defaults to the working directory
	GitRoot        bool   // resolve the root to the enclosing git work tree
	ConfigPath     string // defaults to <root>/.scaffold-check.conf
	Debug          bool
	NonInteractive bool
}

// SetupContext holds all dependencies needed by commands
type SetupContext struct {
	Root   string
	Config *config.Config
	UI     *ui.UI
	FS     *system.FileSystem
	Log    *zap.Logger
}

// NewSetupContext creates a new SetupContext with all dependencies initialized
func NewSetupContext(opts Options) (*SetupContext, error) {
	if opts.GitRoot && !system.CommandExists("git") {
		return nil, fmt.Errorf("--git-root requires git in PATH")
	}
	return NewSetupContextWithUI(opts, ui.New(), system.NewCommandRunner())
}

// NewSetupContextWithUI creates a SetupContext with a custom UI and command
// runner (useful for testing)
func NewSetupContextWithUI(opts Options, u *ui.UI, runner system.CommandRunner) (*SetupContext, error) {
	root, err := resolveRoot(opts, runner)
	if err != nil {
		return nil, err
	}

	cfg := config.ForRoot(root)
	if opts.ConfigPath != "" {
		cfg = config.New(opts.ConfigPath)
	}
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := observability.NewLogger(opts.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	u.SetNonInteractive(opts.NonInteractive)

	return &SetupContext{
		Root:   root,
		Config: cfg,
		UI:     u,
		FS:     system.NewFileSystem(),
		Log:    log,
	}, nil
}

func resolveRoot(opts Options, runner system.CommandRunner) (string, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}

	if opts.GitRoot {
		top, err := system.FindGitRoot(runner, root)
		if err != nil {
			return "", err
		}
		return top, nil
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root %s: %w", root, err)
	}
	return abs, nil
}

// Close flushes the diagnostic logger
func (c *SetupContext) Close() {
	_ = c.Log.Sync()
}

// setting returns the flag value when set, otherwise the configured value
func (c *SetupContext) setting(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return c.Config.GetOrDefault(key, "")
}

// Profile returns the profile to use, preferring the flag over the config
func (c *SetupContext) Profile(flagValue string) string {
	return c.setting(flagValue, config.KeyProfile)
}

// VerifyOptions merges flag values with the configuration
func (c *SetupContext) VerifyOptions(profile, format, output, metricsFile string) steps.VerifyOptions {
	return steps.VerifyOptions{
		Root:        c.Root,
		Profile:     c.Profile(profile),
		ExtraPaths:  c.Config.GetList(config.KeyExtraRequiredPaths),
		Format:      c.setting(format, config.KeyReportFormat),
		OutputPath:  output,
		MetricsFile: c.setting(metricsFile, config.KeyMetricsFile),
	}
}

// InitOptions merges flag values with the configuration. The template
// language and the project version are only taken from the config when they
// were set there explicitly.
func (c *SetupContext) InitOptions(profile, version, language string, assumeYes bool) steps.InitOptions {
	if version == "" && c.Config.Exists(config.KeyProjectVersion) {
		version = c.Config.GetOrDefault(config.KeyProjectVersion, "")
	}
	if language == "" && c.Config.Exists(config.KeyTemplateLanguage) {
		language = c.Config.GetOrDefault(config.KeyTemplateLanguage, "")
	}

	return steps.InitOptions{
		Root:       c.Root,
		Profile:    c.Profile(profile),
		ExtraPaths: c.Config.GetList(config.KeyExtraRequiredPaths),
		Version:    version,
		Language:   language,
		AssumeYes:  assumeYes,
	}
}

// RunVerify verifies the project scaffold
func (c *SetupContext) RunVerify(opts steps.VerifyOptions) error {
	_, err := steps.RunVerification(opts, c.FS, c.UI, c.Log)
	return err
}

// RunInit installs the missing scaffold
func (c *SetupContext) RunInit(opts steps.InitOptions) error {
	installer := steps.NewScaffoldInstaller(c.FS, c.UI, c.Log)
	if _, err := installer.Run(opts); err != nil {
		return err
	}
	return nil
}
