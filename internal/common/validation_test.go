package common

import "testing"

func TestValidateRelativePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid file", "CLAUDE.md", false},
		{"valid nested dir", "docs/feature-proposals", false},
		{"valid with trailing slash", "docs/", false},
		{"valid with inner dotdot", "docs/../plan", false},
		{"invalid - absolute", "/etc/passwd", true},
		{"invalid - parent", "..", true},
		{"invalid - escapes root", "../other/VERSION", true},
		{"invalid - root itself", ".", true},
		{"invalid - empty", "", true},
		{"invalid - whitespace", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelativePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRelativePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"valid version", "1.2.3", false},
		{"valid initial", "0.1.0", false},
		{"valid pre-release", "1.0.0-rc.1", false},
		{"valid build metadata", "1.0.0+20261019", false},
		{"valid both", "2.0.0-beta+exp.sha.5114f85", false},
		{"invalid - two components", "1.2", true},
		{"invalid - four components", "1.2.3.4", true},
		{"invalid - leading zero", "01.2.3", true},
		{"invalid - not numeric", "1.x.3", true},
		{"invalid - v prefix", "v1.2.3", true},
		{"invalid - empty pre-release", "1.2.3-", true},
		{"invalid - empty build", "1.2.3+", true},
		{"invalid - empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVersion(tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("minimal"); err != nil {
		t.Errorf("ValidateNotEmpty() error = %v, want nil", err)
	}
	if err := ValidateNotEmpty(" \t"); err == nil {
		t.Error("ValidateNotEmpty() error = nil, want error for blank value")
	}
}

func TestValidateOneOf(t *testing.T) {
	allowed := []string{"text", "json", "markdown"}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"first choice", "text", false},
		{"last choice", "markdown", false},
		{"case sensitive", "JSON", true},
		{"unknown", "yaml", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOneOf("format", tt.value, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOneOf() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
