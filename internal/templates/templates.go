// Package templates holds the placeholder framework test installed into new
// projects, one per supported language.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed files/*.tmpl
var files embed.FS

// ErrUnknownLanguage is returned for a language with no template.
var ErrUnknownLanguage = errors.New("unknown template language")

// Template is a framework test source and where it is installed.
type Template struct {
	Language string
	Target   string // relative to the project root
	Content  []byte
}

var targets = map[string]string{
	"go":         "scaffoldtest/framework_test.go",
	"python":     "tests/test_framework_setup.py",
	"javascript": "tests/framework.test.js",
	"ruby":       "test/framework_test.rb",
	"rust":       "tests/framework_test.rs",
	"java":       "src/test/java/FrameworkTest.java",
}

// Languages returns the supported languages, sorted.
func Languages() []string {
	langs := make([]string, 0, len(targets))
	for lang := range targets {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Lookup returns the template for a language.
func Lookup(lang string) (Template, error) {
	target, ok := targets[lang]
	if !ok {
		return Template{}, fmt.Errorf("%w %q (expected one of: %s)", ErrUnknownLanguage, lang, strings.Join(Languages(), ", "))
	}

	content, err := files.ReadFile("files/" + lang + ".tmpl")
	if err != nil {
		return Template{}, fmt.Errorf("failed to read %s template: %w", lang, err)
	}

	return Template{Language: lang, Target: target, Content: content}, nil
}
