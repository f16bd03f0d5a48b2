// SPDX-License-Identifier: MIT
//
// File: reader.go
// Role: Header-mapped CSV ingestion producing []Record.
// Policy:
//   - Structural failures (unparsable CSV, missing required columns) are
//     fatal and wrapped with context.
//   - Row-level incompleteness is NOT checked here; the builder filters it.

package tracks

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for CSV ingestion.
var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("tracks: required column missing")

	// ErrEmptyHeader indicates the input contains no header row.
	ErrEmptyHeader = errors.New("tracks: empty header")
)

// Default header names of the reference data set.
const (
	DefaultIDColumn      = "track_id"
	DefaultNameColumn    = "track_name"
	DefaultArtistsColumn = "artists"
)

// readConfig aggregates the column mapping; resolved from options once.
type readConfig struct {
	idColumn      string
	nameColumn    string
	artistsColumn string
}

// ReadOption configures CSV ingestion.
type ReadOption func(*readConfig)

// WithIDColumn overrides the track-identifier column name.
// Panics on an empty name (option-constructor validation).
func WithIDColumn(name string) ReadOption {
	if name == "" {
		panic("tracks: WithIDColumn requires a non-empty name")
	}

	return func(c *readConfig) { c.idColumn = name }
}

// WithNameColumn overrides the track-title column name. The title column is
// optional in the input; overriding only changes where we look for it.
// Panics on an empty name.
func WithNameColumn(name string) ReadOption {
	if name == "" {
		panic("tracks: WithNameColumn requires a non-empty name")
	}

	return func(c *readConfig) { c.nameColumn = name }
}

// WithArtistsColumn overrides the artist-list column name.
// Panics on an empty name.
func WithArtistsColumn(name string) ReadOption {
	if name == "" {
		panic("tracks: WithArtistsColumn requires a non-empty name")
	}

	return func(c *readConfig) { c.artistsColumn = name }
}

// newReadConfig resolves options over deterministic defaults.
// Complexity: O(len(opts)).
func newReadConfig(opts ...ReadOption) readConfig {
	cfg := readConfig{
		idColumn:      DefaultIDColumn,
		nameColumn:    DefaultNameColumn,
		artistsColumn: DefaultArtistsColumn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Read ingests header-mapped CSV from r into a record slice.
//
// Contract:
//   - The first row is the header. Identifier and artist columns are
//     required (ErrMissingColumn); the title column is optional.
//   - Rows shorter than a mapped column index yield "" for that field and
//     are kept — the builder's completeness filter decides their fate.
//   - Any CSV-level parse failure is fatal and wrapped with row context.
//
// Complexity: O(total input size).
func Read(r io.Reader, opts ...ReadOption) ([]Record, error) {
	cfg := newReadConfig(opts...)

	cr := csv.NewReader(r)
	// Ragged rows are data noise, not structural failures; tolerate them
	// here and let the completeness filter downstream do the skipping.
	cr.FieldsPerRecord = -1

	// 1) Header row.
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyHeader
	}
	if err != nil {
		return nil, fmt.Errorf("tracks: read header: %w", err)
	}

	// 2) Resolve column positions (first match wins; names are trimmed).
	idIdx, nameIdx, artistsIdx := -1, -1, -1
	for i, column := range header {
		switch strings.TrimSpace(column) {
		case cfg.idColumn:
			if idIdx < 0 {
				idIdx = i
			}
		case cfg.nameColumn:
			if nameIdx < 0 {
				nameIdx = i
			}
		case cfg.artistsColumn:
			if artistsIdx < 0 {
				artistsIdx = i
			}
		}
	}
	if idIdx < 0 {
		return nil, fmt.Errorf("tracks: column %q: %w", cfg.idColumn, ErrMissingColumn)
	}
	if artistsIdx < 0 {
		return nil, fmt.Errorf("tracks: column %q: %w", cfg.artistsColumn, ErrMissingColumn)
	}

	// 3) Data rows.
	var records []Record
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tracks: read row %d: %w", row, err)
		}
		records = append(records, Record{
			ID:      fieldAt(fields, idIdx),
			Name:    fieldAt(fields, nameIdx),
			Artists: fieldAt(fields, artistsIdx),
		})
	}

	return records, nil
}

// ReadFile opens path and delegates to Read.
// Complexity: O(file size).
func ReadFile(path string, opts ...ReadOption) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tracks: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// fieldAt returns fields[idx], or "" when idx is out of range (ragged row
// or an optional column that the header never declared).
func fieldAt(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}

	return fields[idx]
}
