// Package tracks_test verifies artist-field parsing and the record
// completeness check.
package tracks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/collabnet/tracks"
)

func TestParseArtists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "plain", raw: "A;B;C", want: []string{"A", "B", "C"}},
		{name: "padded", raw: "A; B ;C", want: []string{"A", "B", "C"}},
		{name: "consecutive delimiters", raw: "A;;B", want: []string{"A", "B"}},
		{name: "trailing delimiter", raw: "A;B;", want: []string{"A", "B"}},
		{name: "leading delimiter", raw: ";A", want: []string{"A"}},
		{name: "single", raw: "Solo", want: []string{"Solo"}},
		{name: "duplicates preserved", raw: "A;A;B", want: []string{"A", "A", "B"}},
		{name: "whitespace only fragment", raw: "A;   ;B", want: []string{"A", "B"}},
		{name: "empty", raw: "", want: nil},
		{name: "only delimiters", raw: ";;;", want: []string{}},
		// Names are verbatim after trimming: case and punctuation survive.
		{name: "verbatim identity", raw: "alpha;Alpha;AL-PHA", want: []string{"alpha", "Alpha", "AL-PHA"}},
		// Inner whitespace belongs to the name.
		{name: "inner whitespace", raw: " The Duo ;B", want: []string{"The Duo", "B"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tracks.ParseArtists(tc.raw)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitArtists_CustomDelimiter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"A", "B"}, tracks.SplitArtists("A | B", "|"))

	// An empty delimiter has no sane split: degrade to empty, never error.
	assert.Empty(t, tracks.SplitArtists("A;B", ""))
}

func TestRecord_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  tracks.Record
		want bool
	}{
		{name: "complete", rec: tracks.Record{ID: "T1", Artists: "A;B"}, want: true},
		{name: "blank id", rec: tracks.Record{ID: "  ", Artists: "A;B"}, want: false},
		{name: "missing id", rec: tracks.Record{Artists: "A;B"}, want: false},
		{name: "blank artists", rec: tracks.Record{ID: "T1", Artists: " "}, want: false},
		{name: "missing artists", rec: tracks.Record{ID: "T1"}, want: false},
		{name: "name is optional", rec: tracks.Record{ID: "T1", Artists: "A"}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.rec.Valid())
		})
	}
}
