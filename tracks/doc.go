// Package tracks defines the track-record input model and CSV ingestion for
// collaboration-graph construction.
//
// Overview:
//
//   - Record is one input row: a track identifier, an optional display name,
//     and the raw semicolon-delimited artist field.
//   - ParseArtists splits a raw artist field into trimmed, non-empty
//     fragments. Names are taken verbatim after trimming — no case folding,
//     no punctuation cleanup, no deduplication of near-identical spellings.
//     Preserving the literal chart credit string is deliberate.
//   - Read / ReadFile ingest a header-mapped CSV via encoding/csv.
//
// Error policy (mirrors the builder's filtering contract):
//
//   - Rows that merely fail the completeness check (blank identifier or blank
//     artist field) are NOT errors here: they are returned as records and
//     silently filtered by the builder. Expected data noise, not failures.
//   - A structurally unreadable file is fatal: CSV parse failures surface as
//     wrapped errors, and a header missing a required column returns
//     ErrMissingColumn.
//
// Errors (sentinel):
//
//	ErrMissingColumn – the header lacks the identifier or artist column.
//	ErrEmptyHeader   – the input has no header row at all.
package tracks
