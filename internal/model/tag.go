package model

import "strings"

// FormatProjectTag normalizes free-text project-tag input into a canonical
// "#tag" token. Whitespace and commas are stripped; a leading "#" is added
// if absent. Empty or whitespace-only input yields ""; the caller
// substitutes DefaultProjectTag at save time, not while editing, so the
// field may legitimately display empty.
func FormatProjectTag(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range input {
		switch {
		case r == ',':
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		default:
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return ""
	}
	if strings.HasPrefix(clean, "#") {
		return clean
	}
	return "#" + clean
}

// TagOrDefault applies the save-time default.
func TagOrDefault(tag string) string {
	if strings.TrimSpace(tag) == "" {
		return DefaultProjectTag
	}
	return tag
}
