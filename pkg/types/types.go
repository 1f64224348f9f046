// Package types defines shared types used across the langcode codebase.
package types

import "time"

// Resolution is the result of resolving a query (a BCP 47 tag, an ISO 639
// code, or an English language name) to a canonical language tag.
type Resolution struct {
	Query string `json:"query"`

	// Tag is the canonical BCP 47 tag, with deprecated and legacy
	// aliases replaced.
	Tag string `json:"tag"`

	// Name is the full English display name, e.g. "Spanish (Mexico)".
	Name string `json:"name"`

	// ByName is true when the query matched an English language name
	// rather than parsing as a tag.
	ByName bool `json:"by_name,omitempty"`

	// Structured name components. Script and Territory are only set when
	// the corresponding subtag is explicit in the tag.
	Language  string `json:"language,omitempty"`
	Script    string `json:"script,omitempty"`
	Territory string `json:"territory,omitempty"`

	// LikelyScript is the four-letter code of the most likely writing
	// script, or "Unknown" when no likely script can be inferred.
	LikelyScript     string `json:"likely_script"`
	LikelyScriptName string `json:"likely_script_name,omitempty"`

	// Related lists identical or near-identical tags and codes, each with
	// its own resolved display name.
	Related []RelatedTag `json:"related,omitempty"`
}

// RelatedTag is a tag or code that is identical or near-identical to the
// primary resolution.
type RelatedTag struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SimpleLine returns the one-line form of the resolution: the display name
// for tag queries, "tag: name" for name queries.
func (r *Resolution) SimpleLine() string {
	if r.ByName {
		return r.Tag + ": " + r.Name
	}
	return r.Name
}

// HistoryEntry records one resolved lookup.
type HistoryEntry struct {
	ID           string    `json:"id"`
	Query        string    `json:"query"`
	Tag          string    `json:"tag"`
	Name         string    `json:"name,omitempty"`
	LikelyScript string    `json:"likely_script,omitempty"`
	Mode         string    `json:"mode,omitempty"` // "default" or "simple"
	CreatedAt    time.Time `json:"created_at"`
}
