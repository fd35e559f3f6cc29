package cli

import (
	"fmt"
	"strings"

	"github.com/ai-first-sdlc/scaffold-check/internal/common"
	"github.com/ai-first-sdlc/scaffold-check/internal/config"
	"github.com/ai-first-sdlc/scaffold-check/internal/report"
	"github.com/ai-first-sdlc/scaffold-check/internal/scaffold"
	"github.com/ai-first-sdlc/scaffold-check/internal/templates"
)

// ValidateSetting checks a value before it is stored under key
func ValidateSetting(key, value string) error {
	if !config.IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(config.KnownKeys, ", "))
	}

	switch key {
	case config.KeyProfile:
		return common.ValidateOneOf("profile", value, scaffold.Profiles())
	case config.KeyReportFormat:
		return common.ValidateOneOf("format", value, report.Formats())
	case config.KeyTemplateLanguage:
		return common.ValidateOneOf("language", value, templates.Languages())
	case config.KeyProjectVersion:
		return common.ValidateVersion(value)
	case config.KeyExtraRequiredPaths:
		for _, p := range strings.Fields(value) {
			if err := common.ValidateRelativePath(p); err != nil {
				return err
			}
		}
		return nil
	case config.KeyMetricsFile:
		return common.ValidateNotEmpty(value)
	case config.KeyConfigVersion:
		return fmt.Errorf("%s is managed by scaffold-check", key)
	}
	return nil
}

// SetSetting validates and stores a configuration value
func (c *SetupContext) SetSetting(key, value string) error {
	key = strings.ToUpper(strings.TrimSpace(key))
	if err := ValidateSetting(key, value); err != nil {
		return err
	}

	if !c.Config.Exists(config.KeyConfigVersion) {
		if err := c.Config.Set(config.KeyConfigVersion, config.Defaults[config.KeyConfigVersion]); err != nil {
			return err
		}
	}
	return c.Config.Set(key, value)
}
