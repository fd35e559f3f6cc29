package templates

import (
	"strings"
	"testing"
)

func TestLookupEveryLanguage(t *testing.T) {
	langs := Languages()
	if len(langs) != 6 {
		t.Fatalf("Languages() = %v, want 6 languages", langs)
	}

	for _, lang := range langs {
		t.Run(lang, func(t *testing.T) {
			tmpl, err := Lookup(lang)
			if err != nil {
				t.Fatalf("Lookup(%s) error = %v", lang, err)
			}
			if tmpl.Target == "" || strings.HasPrefix(tmpl.Target, "/") {
				t.Errorf("Lookup(%s).Target = %q, want a relative path", lang, tmpl.Target)
			}

			content := string(tmpl.Content)
			for _, path := range []string{"docs", "retrospectives", "CLAUDE.md", "VERSION"} {
				if !strings.Contains(content, path) {
					t.Errorf("%s template does not check %s", lang, path)
				}
			}
		})
	}
}

func TestLookupUnknownLanguage(t *testing.T) {
	_, err := Lookup("cobol")
	if err == nil {
		t.Fatal("Lookup(cobol) error = nil, want error")
	}
	if !strings.Contains(err.Error(), "go, java, javascript, python, ruby, rust") {
		t.Errorf("Lookup(cobol) error = %v, want the supported languages listed", err)
	}
}

func TestPythonTemplateAcceptsAnyPathKind(t *testing.T) {
	tmpl, err := Lookup("python")
	if err != nil {
		t.Fatalf("Lookup(python) error = %v", err)
	}

	content := string(tmpl.Content)
	if strings.Contains(content, "isdir") {
		t.Error("python template requires directories, want existence checks only")
	}
	for _, path := range []string{"docs", "retrospectives", "CLAUDE.md"} {
		want := `os.path.exists("` + path + `")`
		if !strings.Contains(content, want) {
			t.Errorf("python template missing %s", want)
		}
	}
}
