package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Verification
	KeyProfile            = "PROFILE"
	KeyExtraRequiredPaths = "EXTRA_REQUIRED_PATHS" // Space separated, relative to the project root; a trailing / requires a directory

	// Reporting
	KeyReportFormat = "REPORT_FORMAT"
	KeyMetricsFile  = "METRICS_FILE"

	// Scaffold installation
	KeyTemplateLanguage = "TEMPLATE_LANGUAGE"
	KeyProjectVersion   = "PROJECT_VERSION"

	// System configuration
	KeyConfigVersion = "CONFIG_VERSION"
)

// DefaultFileName is the name of the configuration file in the project root
const DefaultFileName = ".scaffold-check.conf"

// Defaults holds default values for configuration keys
var Defaults = map[string]string{
	KeyProfile:          "minimal",
	KeyReportFormat:     "text",
	KeyTemplateLanguage: "go",
	KeyProjectVersion:   "0.1.0",
	KeyConfigVersion:    "1",
}

// KnownKeys lists every key the tool reads, in display order
var KnownKeys = []string{
	KeyProfile,
	KeyExtraRequiredPaths,
	KeyReportFormat,
	KeyMetricsFile,
	KeyTemplateLanguage,
	KeyProjectVersion,
	KeyConfigVersion,
}

// IsKnownKey reports whether key is read by the tool
func IsKnownKey(key string) bool {
	for _, k := range KnownKeys {
		if k == key {
			return true
		}
	}
	return false
}
