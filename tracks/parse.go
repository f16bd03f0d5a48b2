// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Artist-field parsing: split, trim, drop empties. Never errors.

package tracks

import "strings"

// DefaultDelimiter separates artist names inside the raw artist field.
const DefaultDelimiter = ";"

// ParseArtists splits a raw artist field on the default ";" delimiter,
// trims surrounding whitespace from each fragment and drops empty fragments
// (including those produced by consecutive delimiters).
//
// The result is an ordered sequence that may contain duplicates if the
// source row lists the same name twice; deduplication is the pairing
// layer's job, not the parser's.
//
// Malformed input never errors — it degrades to an empty sequence.
// Complexity: O(len(raw)).
func ParseArtists(raw string) []string {
	return SplitArtists(raw, DefaultDelimiter)
}

// SplitArtists is ParseArtists with an explicit delimiter, for inputs that
// deviate from the reference semicolon convention.
// An empty delimiter yields an empty sequence (there is no sane split).
// Complexity: O(len(raw)).
func SplitArtists(raw, delimiter string) []string {
	if raw == "" || delimiter == "" {
		return nil
	}

	fragments := strings.Split(raw, delimiter)
	out := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		name := strings.TrimSpace(fragment)
		if name == "" {
			continue // consecutive delimiters or whitespace-only credit
		}
		out = append(out, name)
	}

	return out
}
