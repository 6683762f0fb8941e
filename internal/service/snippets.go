package service

import "strings"

// MaxSources is the number of note fragments returned with a chat answer.
const MaxSources = 3

// Snippets returns the first max segments of notes split on ". ".
// Segments are returned verbatim; no relevance ranking is applied.
func Snippets(notes string, max int) []string {
	if max <= 0 {
		return []string{}
	}
	parts := strings.SplitN(notes, ". ", max+1)
	if len(parts) > max {
		parts = parts[:max]
	}
	return parts
}
