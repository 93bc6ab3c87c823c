// Package catalog derives a collection-level MARC record from the per-item
// metadata rows of a digitized archival collection.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/isu-meta/marcup/areacodes"
	"github.com/isu-meta/marcup/marc"
	"github.com/isu-meta/marcup/metadata"
)

// DefaultMaxTerms caps how many aggregated terms a repeatable field emits.
const DefaultMaxTerms = 5

// ErrNoRows reports an empty row set. Collection-level values come from
// the first row, so nothing can be derived without one.
var ErrNoRows = errors.New("no metadata rows")

// MissingColumnError reports a collection-level column absent from the
// first metadata row.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("metadata is missing required column %q", e.Column)
}

// Policy captures the formatting differences between the two generations
// of the record template. DefaultPolicy is what new records ship with;
// LegacyPolicy keeps the older choices reproducible.
type Policy struct {
	// TitleCaseProvenance title-cases archival collection names quoted in
	// the citation, original-version, and finding-aid fields.
	TitleCaseProvenance bool
	// CitationItemComma ends each collection/call-number pair in the
	// preferred citation with a comma.
	CitationItemComma bool
	// FindingAidLabel prefixes finding-aid links with "Finding aid for"
	// and marks them as related resources (second indicator 2) instead of
	// the resource itself.
	FindingAidLabel bool
	// AccessStatus adds subfield 7 value 0 to the collection's
	// electronic-access field.
	AccessStatus bool
	// TitleIndicators sets the title indicators to 1 and 0 instead of
	// blanks.
	TitleIndicators bool
}

// DefaultPolicy returns the current record template policy.
func DefaultPolicy() *Policy {
	return &Policy{
		TitleCaseProvenance: true,
		FindingAidLabel:     true,
	}
}

// LegacyPolicy returns the policy matching records cataloged before the
// template revision.
func LegacyPolicy() *Policy {
	return &Policy{
		CitationItemComma: true,
		AccessStatus:      true,
		TitleIndicators:   true,
	}
}

// Options configures a build.
type Options struct {
	// Avian aggregates geographic terms from the geonames column instead
	// of the FAST and local geographic subject columns.
	Avian bool
	// MaxTerms caps aggregated terms per repeatable field. Zero means
	// DefaultMaxTerms.
	MaxTerms int
	// IncludeEvents emits meeting-name fields from the event subject
	// column. Off by default: few collections carry meeting names.
	IncludeEvents bool
	// Policy selects the record template generation. Nil means
	// DefaultPolicy.
	Policy *Policy
	// AreaCodes resolves geographic terms for the area-code field. Nil
	// means areacodes.Default.
	AreaCodes areacodes.Table
	// Now supplies the date stamp for the fixed-length data field. Nil
	// means time.Now. Tests inject a fixed clock here.
	Now func() time.Time
}

// NewOptions returns default build options.
func NewOptions() *Options {
	return &Options{}
}

// Leader returns the cataloger-set leader bytes for a collection-level
// record: collection bibliographic level under archival control, full
// cataloging from a non-bibliographic source, ISBD punctuation. The
// remaining positions stay blank for catalogers to finish on load.
func Leader() marc.Leader {
	return marc.Leader{
		Type:          'P',
		BibLevel:      'c',
		Control:       'a',
		EncodingLevel: 'I',
		Form:          'i',
	}
}

// BuildFields derives the ordered MARC field list for one collection.
func BuildFields(rows []metadata.Row, opts *Options) ([]marc.Field, error) {
	b, err := newBuilder(rows, opts)
	if err != nil {
		return nil, err
	}
	return b.run(), nil
}

// Build derives a complete record: Leader plus BuildFields.
func Build(rows []metadata.Row, opts *Options) (*marc.Record, error) {
	fields, err := BuildFields(rows, opts)
	if err != nil {
		return nil, err
	}
	return &marc.Record{Leader: Leader(), Fields: fields}, nil
}
