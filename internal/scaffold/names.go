package scaffold

// Paths the AI-First SDLC framework installs, relative to the project root.
const (
	DocsDir             = "docs"
	FeatureProposalsDir = "docs/feature-proposals"
	RetrospectivesDir   = "retrospectives"
	ClaudeFile          = "CLAUDE.md"
	ReadmeFile          = "README.md"
	VersionFile         = "VERSION"
	GitDir              = ".git"
	GitIgnoreFile       = ".gitignore"
)

// Check names.
const (
	CheckFrameworkSetup    = "framework-setup"
	CheckProjectStructure  = "project-structure"
	CheckVersionFile       = "version-file"
	CheckFrameworkFiles    = "framework-files"
	CheckFrameworkDirs     = "framework-dirs"
	CheckClaudeDirectives  = "claude-directives"
	CheckGitIgnorePatterns = "gitignore-ai-patterns"
	CheckGitRepository     = "git-repository"
	CheckCustomPaths       = "custom-paths"
)

// ClaudeDirectives are phrases CLAUDE.md must mention, matched case-insensitively.
var ClaudeDirectives = []string{
	"claude.md",
	"ai development",
	"git workflow",
	"never push directly to main",
}

// AIToolPatterns are .gitignore entries for AI assistant state directories.
var AIToolPatterns = []string{".claude", ".cursor", ".aider"}
