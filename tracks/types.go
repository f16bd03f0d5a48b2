// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: The Record input model and its completeness check.

package tracks

import "strings"

// Record is one track row from the input file.
//
// Only ID and Artists participate in graph construction; Name is carried
// for reporting convenience and may be empty.
type Record struct {
	// ID uniquely identifies the track within the input file.
	ID string

	// Name is the human-readable track title (optional).
	Name string

	// Artists is the raw delimited artist field, exactly as read.
	Artists string
}

// Valid reports whether the record passes the basic completeness check:
// a non-blank identifier and a non-blank artist field. Records failing this
// check are silently skipped by the builder, never treated as fatal.
// Complexity: O(len(ID) + len(Artists)).
func (r Record) Valid() bool {
	return strings.TrimSpace(r.ID) != "" && strings.TrimSpace(r.Artists) != ""
}
