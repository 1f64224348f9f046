package langtag

import (
	"sort"

	"github.com/langcode/langcode/pkg/types"
	"golang.org/x/text/language"
)

// candidate is a raw code under consideration for the related list. alias
// carries the tag the code refers to when the code itself does not parse
// (bibliographic alpha-3 codes).
type candidate struct {
	code  string
	alias language.Tag
}

// relatedTags collects tags and codes that are identical or near-identical
// to the given tag: the standardized and raw forms, the minimized and
// maximized forms, recombinations of the maximized subtags, macrolanguage
// relatives, deprecated replacements, and alpha-3 equivalents.
func relatedTags(tag language.Tag) []types.RelatedTag {
	primary := tag.String()

	var cands []candidate
	seen := map[string]bool{}
	add := func(code string, alias language.Tag) {
		if code == "" || seen[code] {
			return
		}
		seen[code] = true
		cands = append(cands, candidate{code: code, alias: alias})
	}
	addTag := func(t language.Tag) {
		add(t.String(), t)
	}

	addTag(tag)
	addTag(minimize(tag))

	full := maximize(tag)
	addTag(full)

	// Recombinations of the maximized subtags.
	base, baseConf := full.Base()
	if baseConf > language.No {
		script, scriptConf := full.Script()
		region, regionConf := full.Region()
		hasScript := scriptConf > language.No && script.String() != unknownScript
		hasRegion := regionConf > language.No && region.String() != unknownRegion

		compose := func(parts ...interface{}) {
			if t, err := language.Compose(parts...); err == nil {
				addTag(t)
			}
		}
		compose(base)
		if hasScript {
			compose(base, script)
		}
		if hasRegion {
			compose(base, region)
		}
		if hasScript && hasRegion {
			compose(base, script, region)
		}
		for _, variant := range full.Variants() {
			compose(base, variant)
			if hasScript {
				compose(base, script, variant)
			}
			if hasRegion {
				compose(base, region, variant)
			}
			if hasScript && hasRegion {
				compose(base, script, region, variant)
			}
		}
	}

	// Registry relations of the base language code.
	if baseConf > language.No {
		code := base.String()
		baseTag := language.Make(code)

		for _, child := range reverseLookup(macrolanguages, code) {
			add(child, baseTag)
		}
		if macro, ok := macrolanguages[code]; ok {
			add(macro, language.Make(macro))
		}

		for _, old := range reverseLookup(languageReplacements, code) {
			add(old, baseTag)
		}
		if replacement, ok := languageReplacements[code]; ok {
			add(replacement, language.Make(replacement))
		}

		if alpha3, ok := languageAlpha3[code]; ok {
			add(alpha3, baseTag)
		}
		if biblio, ok := languageAlpha3Bibliographic[code]; ok {
			add(biblio, baseTag)
		}
	}

	var related []types.RelatedTag
	for _, cand := range cands {
		if cand.code == primary {
			continue
		}
		ref := cand.alias
		if t, err := language.Parse(cand.code); err == nil {
			ref = t
		}
		if ref == language.Und {
			continue
		}
		if excludedUSTag(ref) {
			continue
		}
		if !nearIdentical(tag, ref) {
			continue
		}
		related = append(related, types.RelatedTag{
			Code: cand.code,
			Name: displayName(cand.code, cand.alias),
		})
	}
	return related
}

// reverseLookup returns the keys of m whose value equals want, sorted for
// stable output.
func reverseLookup(m map[string]string, want string) []string {
	var keys []string
	for k, v := range m {
		if v == want {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// excludedUSTag reports whether a tag carries an explicit US territory for a
// language outside the allowlist.
func excludedUSTag(tag language.Tag) bool {
	_, _, region := tag.Raw()
	if region.String() != "US" {
		return false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return false
	}
	return !usTerritoryAllowlist[base.String()]
}
