package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ai-first-sdlc/scaffold-check/internal/config"
	"github.com/ai-first-sdlc/scaffold-check/internal/scaffold"
	"github.com/ai-first-sdlc/scaffold-check/internal/templates"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// Menu provides an interactive menu interface
type Menu struct {
	ctx *SetupContext
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *SetupContext) *Menu {
	return &Menu{ctx: ctx}
}

// clearScreen clears the terminal screen using ANSI escape codes
func (m *Menu) clearScreen() {
	if m.ctx.UI.IsNonInteractive() {
		return
	}
	fmt.Fprint(m.ctx.UI.Writer(), "\033[2J\033[H")
}

// pause waits for Enter before returning to the menu
func (m *Menu) pause() {
	if m.ctx.UI.IsNonInteractive() {
		return
	}
	fmt.Fprintln(m.ctx.UI.Writer())
	m.ctx.UI.Info("Press Enter to return to menu...")
	fmt.Scanln()
}

// Show displays the main menu and handles user input
func (m *Menu) Show() error {
	if m.ctx.UI.IsNonInteractive() {
		return fmt.Errorf("the menu requires an interactive terminal")
	}

	for {
		m.clearScreen()
		m.displayMenu()

		choice, err := m.ctx.UI.PromptInput("Enter your choice", "")
		if err != nil {
			return err
		}

		choice = strings.ToUpper(strings.TrimSpace(choice))

		if err := m.handleChoice(choice); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Error(fmt.Sprintf("%v", err))
			m.pause()
		}
	}
}

// displayMenu displays the main menu
func (m *Menu) displayMenu() {
	w := m.ctx.UI.Writer()
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	border := strings.Repeat("=", 70)
	cyan.Fprintln(w, border)
	cyan.Fprintln(w, "  AI-First SDLC Scaffold Check")
	cyan.Fprintln(w, border)
	fmt.Fprintln(w)

	m.ctx.UI.Infof("Project root: %s", m.ctx.Root)
	m.ctx.UI.Infof("Profile: %s", m.ctx.Profile(""))
	fmt.Fprintln(w)

	cyan.Fprintln(w, strings.Repeat("-", 70))
	m.ctx.UI.Info("Options:")
	cyan.Fprintln(w, strings.Repeat("-", 70))
	fmt.Fprintln(w)

	options := []struct{ key, label string }{
		{"V", "Verify scaffold"},
		{"I", "Install missing scaffold"},
		{"T", "Install framework test template"},
		{"S", "Show scaffold status"},
		{"H", "Help"},
		{"X", "Exit"},
	}
	for _, opt := range options {
		bold.Fprintf(w, "  [%s] ", opt.key)
		fmt.Fprintln(w, opt.label)
	}
	fmt.Fprintln(w)
}

// handleChoice processes the user's menu choice
func (m *Menu) handleChoice(choice string) error {
	switch choice {
	case "V":
		return m.runVerify()
	case "I":
		return m.runInit()
	case "T":
		return m.installTemplate()
	case "S":
		return m.showStatus()
	case "H":
		return m.showHelp()
	case "X":
		return ErrExit
	default:
		return fmt.Errorf("invalid choice: %s", choice)
	}
}

// runVerify verifies the scaffold with the configured settings
func (m *Menu) runVerify() error {
	m.clearScreen()
	err := m.ctx.RunVerify(m.ctx.VerifyOptions("", "", "", ""))
	m.pause()
	return err
}

// runInit installs missing scaffold paths after asking which to create
func (m *Menu) runInit() error {
	m.clearScreen()
	err := m.ctx.RunInit(m.ctx.InitOptions("", "", "", false))
	m.pause()
	return err
}

// installTemplate asks for a language and installs its framework test
func (m *Menu) installTemplate() error {
	m.clearScreen()
	m.ctx.UI.Header("Framework Test Template")

	languages := templates.Languages()
	idx, err := m.ctx.UI.PromptSelect("Language", languages, m.ctx.Config.GetOrDefault(config.KeyTemplateLanguage, "go"))
	if err != nil {
		return err
	}

	opts := m.ctx.InitOptions("", "", languages[idx], false)
	err = m.ctx.RunInit(opts)
	m.pause()
	return err
}

// showStatus shows the current scaffold status
func (m *Menu) showStatus() error {
	m.clearScreen()
	err := m.ctx.ShowStatus("")
	m.pause()
	return err
}

// showHelp displays help information
func (m *Menu) showHelp() error {
	m.clearScreen()
	m.ctx.UI.Header("Help")

	help := fmt.Sprintf(`
AI-First SDLC Scaffold Check - Help

This tool checks that a project carries the AI-First SDLC framework
scaffold and can install whatever is missing.

PROFILES:

  minimal     %s, %s, %s
  standard    minimal plus %s, %s, %s,
              %s and %s

REQUIRED BY THE MINIMAL PROFILE:

  %s/  %s/  %s  %s

CONFIGURATION FILE:

  %s (see 'scaffold-check config list')

COMMAND-LINE MODE:

  scaffold-check verify                 # Verify the scaffold (default)
  scaffold-check verify --format json   # Machine-readable report
  scaffold-check init --yes             # Create every missing path
  scaffold-check init --template go     # Install a framework test
  scaffold-check status                 # Show scaffold status
`,
		scaffold.CheckFrameworkSetup, scaffold.CheckProjectStructure, scaffold.CheckVersionFile,
		scaffold.CheckFrameworkFiles, scaffold.CheckFrameworkDirs, scaffold.CheckClaudeDirectives,
		scaffold.CheckGitIgnorePatterns, scaffold.CheckGitRepository,
		scaffold.DocsDir, scaffold.RetrospectivesDir, scaffold.ClaudeFile, scaffold.VersionFile,
		m.ctx.Config.FilePath())

	m.ctx.UI.Print(help)
	m.pause()

	return nil
}
