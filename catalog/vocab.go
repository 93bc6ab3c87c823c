package catalog

import (
	"strings"

	"github.com/isu-meta/marcup/marc"
	"github.com/isu-meta/marcup/metadata"
)

// Authority URI markers deciding which controlled vocabulary a term came
// from. Match order matters: the name-authority check wins over FAST.
const (
	nameAuthorityMarker = "id.loc.gov"
	fastAuthorityMarker = "id.worldcat.org/fast"
)

// fallbackIndicator marks terms whose URI belongs to no recognized
// vocabulary.
const fallbackIndicator = '4'

// classifyTerm builds a name or subject field for one term/URI pair.
// Library of Congress name authority terms get second indicator 0, FAST
// terms 7 with source "fast", terms without a URI 7 with source "local",
// and anything else the fallback indicator with no source subfield. Terms
// that are blank after trimming report ok false.
func classifyTerm(tag string, ts metadata.TermSource, ind1, fallback byte) (marc.Field, bool) {
	if strings.TrimSpace(ts.Term) == "" {
		return marc.Field{}, false
	}

	switch {
	case strings.Contains(ts.URI, nameAuthorityMarker):
		return marc.NewField(tag, ind1, '0', marc.Sub('a', ts.Term)), true
	case strings.Contains(ts.URI, fastAuthorityMarker):
		return marc.NewField(tag, ind1, '7', marc.Sub('a', ts.Term), marc.Sub('2', "fast")), true
	case ts.URI == "":
		return marc.NewField(tag, ind1, '7', marc.Sub('a', ts.Term), marc.Sub('2', "local")), true
	default:
		return marc.NewField(tag, ind1, fallback, marc.Sub('a', ts.Term)), true
	}
}
