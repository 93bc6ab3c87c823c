package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/isu-meta/marcup/areacodes"
	"github.com/isu-meta/marcup/marc"
	"github.com/isu-meta/marcup/metadata"
)

// descriptionMarker splits a collection description into the
// biographical/historical half and the sentence about the collection
// itself.
const descriptionMarker = "The collection"

// collectYears returns the four-character year prefix of every non-empty
// original date, sorted. Years are zero-padded digit strings, so the
// lexicographic order is chronological.
func collectYears(rows []metadata.Row) []string {
	var years []string
	for _, row := range rows {
		date := row.Value(ColDateOriginal)
		if date == "" {
			continue
		}
		if len(date) > 4 {
			date = date[:4]
		}
		years = append(years, date)
	}
	sort.Strings(years)
	return years
}

// yearRange formats sorted years for the title date subfield: empty, a
// single year, or "first-last." when more than one distinct year appears.
func yearRange(years []string) string {
	if len(years) == 0 {
		return ""
	}

	distinct := 1
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1] {
			distinct++
		}
	}
	if distinct == 1 {
		return years[0]
	}
	return years[0] + "-" + years[len(years)-1] + "."
}

// titleSubfields splits a collection title on ":" into title and subtitle
// subfields with ISBD punctuation. Titles that do not split into exactly
// two pieces keep only the first piece.
func titleSubfields(title string) []marc.Subfield {
	parts := strings.Split(title, ":")
	if len(parts) == 2 {
		return []marc.Subfield{
			marc.Sub('a', parts[0]+" : "),
			marc.Sub('b', parts[1]+", "),
		}
	}
	return []marc.Subfield{marc.Sub('a', parts[0]+", ")}
}

// descriptionSplit cuts the description at descriptionMarker. The leading
// half is the biographical/historical note; when a trailing half exists,
// the summary reattaches it to the collection title.
func descriptionSplit(title, description string) (bioHist, summary string) {
	bioHist, after, _ := strings.Cut(description, descriptionMarker)
	if after != "" {
		summary = title + " " + after
	}
	return bioHist, summary
}

// firstDisclaimer returns the first non-empty disclaimer in row order.
func firstDisclaimer(rows []metadata.Row) string {
	for _, row := range rows {
		if d := row.Value(ColDisclaimer); d != "" {
			return d
		}
	}
	return ""
}

// objectCount counts item rows carrying an identifier. The first row
// describes the collection itself and is excluded.
func objectCount(rows []metadata.Row) int {
	if len(rows) == 0 {
		return 0
	}

	count := 0
	for _, row := range rows[1:] {
		if row.Value(ColArk) != "" {
			count++
		}
	}
	return count
}

// areaCodeList resolves geographic terms to area codes in aggregation
// order. A term that merely mentions Iowa resolves nothing by itself, but
// its presence appends the table's Iowa code after the direct matches.
func areaCodeList(terms []string, codes areacodes.Table) []string {
	var out []string
	mentionsIowa := false

	for _, term := range terms {
		if strings.Contains(term, "Iowa") {
			mentionsIowa = true
		}
		if code, ok := codes.Lookup(term); ok {
			out = append(out, code)
		}
	}

	if mentionsIowa {
		if code, ok := codes.Lookup("Iowa"); ok {
			out = append(out, code)
		}
	}

	return out
}

// controlData lays out the 40-character fixed-length data element: date
// entered on file, blank date positions, place "iau", form of item o
// (online), the dominant language, and cataloging source d.
func controlData(now time.Time, lang string) string {
	if lang == "" {
		lang = "   "
	}
	return now.Format("060102") + "         iau     o           " + lang + " d"
}
