// Package langtag resolves BCP 47 tags, ISO 639 codes, and English language
// names to canonical tags, display names, likely writing scripts, and
// near-identical tag variants.
package langtag

import (
	"fmt"
	"strings"

	"github.com/langcode/langcode/pkg/types"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// english names tags, languages, scripts, and regions in English.
var english = display.English

// Resolve resolves a free-text query. The query may be a BCP 47 tag or ISO
// 639 code ("es-MX", "spa", "iw") or an English language name ("Spanish",
// "Brazilian Portuguese"). Name matching is case-insensitive.
func Resolve(query string) (*types.Resolution, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("empty query")
	}

	// Tags win over names. Anything x/text cannot parse cleanly falls
	// through to the name index.
	if tag, err := language.BCP47.Parse(q); err == nil && tag != language.Und {
		return describe(q, tag, false), nil
	}

	if tag, ok := FindName(q); ok {
		return describe(q, tag, true), nil
	}

	return nil, fmt.Errorf("unknown language or tag %q", q)
}

// describe builds a Resolution for a parsed tag.
func describe(query string, tag language.Tag, byName bool) *types.Resolution {
	res := &types.Resolution{
		Query:  query,
		Tag:    tag.String(),
		Name:   english.Tags().Name(tag),
		ByName: byName,
	}

	if base, conf := tag.Base(); conf > language.No {
		res.Language = english.Languages().Name(base)
	}

	// Raw subtags only: Script/Territory report what the user actually
	// asked about, not what likely-subtag inference filled in.
	_, rawScript, rawRegion := tag.Raw()
	if rawScript.String() != unknownScript {
		res.Script = english.Scripts().Name(rawScript)
	}
	if rawRegion.String() != unknownRegion {
		res.Territory = english.Regions().Name(rawRegion)
	}

	if script, conf := tag.Script(); conf > language.No && script.String() != unknownScript {
		res.LikelyScript = script.String()
		res.LikelyScriptName = english.Scripts().Name(script)
	} else {
		res.LikelyScript = "Unknown"
	}

	res.Related = relatedTags(tag)
	return res
}

const (
	unknownScript = "Zzzz"
	unknownRegion = "ZZ"
)

// maximize fills in the likely script and region subtags of a tag, the
// equivalent of CLDR add-likely-subtags.
func maximize(tag language.Tag) language.Tag {
	base, conf := tag.Base()
	if conf == language.No {
		return tag
	}

	parts := []interface{}{base}
	if script, c := tag.Script(); c > language.No && script.String() != unknownScript {
		parts = append(parts, script)
	}
	if region, c := tag.Region(); c > language.No && region.String() != unknownRegion {
		parts = append(parts, region)
	}
	parts = append(parts, tag.Variants())

	full, err := language.Compose(parts...)
	if err != nil {
		return tag
	}
	return full
}

// minimize drops script and region subtags that the bare base language
// already implies, the equivalent of CLDR remove-likely-subtags.
func minimize(tag language.Tag) language.Tag {
	base, conf := tag.Base()
	if conf == language.No {
		return tag
	}

	bare := language.Make(base.String())
	bareScript, _ := bare.Script()
	bareRegion, _ := bare.Region()

	parts := []interface{}{base}
	if script, c := tag.Script(); c > language.No && script != bareScript {
		parts = append(parts, script)
	}
	if region, c := tag.Region(); c > language.No && region != bareRegion {
		parts = append(parts, region)
	}
	parts = append(parts, tag.Variants())

	min, err := language.Compose(parts...)
	if err != nil {
		return tag
	}
	return min
}

// nearIdentical reports whether two tags match with high confidence in both
// directions. Deprecated aliases, macrolanguage forms, and suppressed
// scripts all pass; merely mutually intelligible languages do not.
func nearIdentical(a, b language.Tag) bool {
	return matchConfidence(a, b) >= language.High && matchConfidence(b, a) >= language.High
}

func matchConfidence(supported, desired language.Tag) language.Confidence {
	m := language.NewMatcher([]language.Tag{supported})
	_, _, conf := m.Match(desired)
	return conf
}

// displayName returns the English display name for a raw code, resolving
// through an alias tag when the code itself is not parseable (bibliographic
// ISO 639-2 codes, mostly).
func displayName(code string, alias language.Tag) string {
	if tag, err := language.Parse(code); err == nil {
		if name := english.Tags().Name(tag); name != "" {
			return name
		}
	}
	if alias != language.Und {
		if name := english.Tags().Name(alias); name != "" {
			return name
		}
	}
	return "Unknown"
}
