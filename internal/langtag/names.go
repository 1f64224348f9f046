package langtag

import (
	"strings"
	"sync"

	iso6391 "github.com/emvi/iso-639-1"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// extraNameTags are tags whose CLDR display names people actually type but
// which a plain ISO 639-1 name lookup cannot find: regional and script
// qualified forms ("Brazilian Portuguese", "Simplified Chinese") and a few
// languages that only have three-letter codes ("Swiss German", "Cantonese").
var extraNameTags = []string{
	"ar-001",
	"de-AT",
	"de-CH",
	"en-AU",
	"en-CA",
	"en-GB",
	"en-US",
	"es-419",
	"es-ES",
	"es-MX",
	"fa-AF",
	"fr-CA",
	"fr-CH",
	"nl-BE",
	"pt-BR",
	"pt-PT",
	"ro-MD",
	"sw-CD",
	"zh-Hans",
	"zh-Hant",
	"chr",
	"cmn",
	"fil",
	"gsw",
	"haw",
	"yue",
}

var (
	nameIndexOnce sync.Once
	nameIndex     map[string]language.Tag

	titleCaser = cases.Title(language.English)
)

// FindName resolves an English language name to a tag, case-insensitively.
// Qualified CLDR names ("Brazilian Portuguese", "Swiss German") are matched
// against the curated index; everything else goes through the ISO 639-1
// inventory.
func FindName(name string) (language.Tag, bool) {
	q := strings.Join(strings.Fields(name), " ")
	if q == "" {
		return language.Und, false
	}

	nameIndexOnce.Do(buildNameIndex)
	if tag, ok := nameIndex[strings.ToLower(q)]; ok {
		return tag, true
	}

	// The ISO inventory stores names in title case.
	for _, candidate := range []string{q, titleCaser.String(q)} {
		lang := iso6391.FromName(candidate)
		if lang.Code == "" {
			continue
		}
		if tag, err := language.Parse(lang.Code); err == nil {
			return tag, true
		}
	}
	return language.Und, false
}

func buildNameIndex() {
	nameIndex = make(map[string]language.Tag)
	add := func(name string, tag language.Tag) {
		key := strings.ToLower(strings.Join(strings.Fields(name), " "))
		if key == "" {
			return
		}
		if _, ok := nameIndex[key]; !ok {
			nameIndex[key] = tag
		}
	}

	for _, code := range extraNameTags {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		add(english.Languages().Name(tag), tag)
		add(english.Tags().Name(tag), tag)
	}
}
