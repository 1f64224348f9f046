package langtag

import (
	"strings"
	"testing"

	"github.com/langcode/langcode/pkg/types"
	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	res, err := Resolve("es-MX")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tag != "es-MX" {
		t.Errorf("Tag = %q, want %q", res.Tag, "es-MX")
	}
	if res.ByName {
		t.Error("ByName = true for a tag query")
	}
	if res.LikelyScript != "Latn" {
		t.Errorf("LikelyScript = %q, want %q", res.LikelyScript, "Latn")
	}
	if res.Language != "Spanish" {
		t.Errorf("Language = %q, want %q", res.Language, "Spanish")
	}
	if res.Territory != "Mexico" {
		t.Errorf("Territory = %q, want %q", res.Territory, "Mexico")
	}
	if !strings.Contains(res.Name, "Spanish") {
		t.Errorf("Name = %q, want it to mention Spanish", res.Name)
	}
}

func TestResolveTagCaseInsensitive(t *testing.T) {
	res, err := Resolve("ES-mx")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tag != "es-MX" {
		t.Errorf("Tag = %q, want %q", res.Tag, "es-MX")
	}
}

func TestResolveDeprecatedTag(t *testing.T) {
	res, err := Resolve("iw")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tag != "he" {
		t.Errorf("Tag = %q, want %q (deprecated alias replaced)", res.Tag, "he")
	}
	if !hasRelated(res.Related, "iw") {
		t.Errorf("Related = %v, want it to include the deprecated code iw", res.Related)
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		query string
		tag   string
	}{
		{"Spanish", "es"},
		{"spanish", "es"},
		{"FRENCH", "fr"},
		{"Swiss German", "gsw"},
		{"Cantonese", "yue"},
		{"Brazilian Portuguese", "pt-BR"},
	}
	for _, tt := range tests {
		res, err := Resolve(tt.query)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.query, err)
			continue
		}
		if res.Tag != tt.tag {
			t.Errorf("Resolve(%q).Tag = %q, want %q", tt.query, res.Tag, tt.tag)
		}
		if !res.ByName {
			t.Errorf("Resolve(%q).ByName = false, want true", tt.query)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, query := range []string{"notalanguage", "xq", "zz-ZZ-invalid-"} {
		if _, err := Resolve(query); err == nil {
			t.Errorf("Resolve(%q): expected error", query)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	if _, err := Resolve("   "); err == nil {
		t.Error("Resolve: expected error for blank query")
	}
}

func TestSimpleLine(t *testing.T) {
	res, err := Resolve("es-MX")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	line := res.SimpleLine()
	if line == "" || strings.Contains(line, "\n") {
		t.Errorf("SimpleLine = %q, want one non-empty line", line)
	}

	res, err = Resolve("Spanish")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	line = res.SimpleLine()
	if !strings.HasPrefix(line, "es: ") {
		t.Errorf("SimpleLine = %q, want es: prefix for a name query", line)
	}
}

func TestMaximizeMinimize(t *testing.T) {
	es := language.MustParse("es")
	full := maximize(es)
	if got := full.String(); got != "es-Latn-ES" {
		t.Errorf("maximize(es) = %q, want %q", got, "es-Latn-ES")
	}
	if got := minimize(full).String(); got != "es" {
		t.Errorf("minimize(%s) = %q, want %q", full, got, "es")
	}
}

func hasRelated(related []types.RelatedTag, code string) bool {
	for _, r := range related {
		if r.Code == code {
			return true
		}
	}
	return false
}
