package catalog

import (
	"sort"

	"github.com/isu-meta/marcup/metadata"
)

// PhysicalCollection is one archival collection referenced by a digital
// collection, with its first-seen call number and how many rows cite it.
type PhysicalCollection struct {
	Name       string
	CallNumber string
	Count      int
}

// Summary reports collection-level facts without building a record.
type Summary struct {
	Title               string
	DigitalCollection   string
	Ark                 string
	Objects             int
	DateRange           string
	Languages           []string
	Disclaimer          string
	PhysicalCollections []PhysicalCollection
}

// Summarize validates rows the same way BuildFields does and reports what
// a build would see.
func Summarize(rows []metadata.Row) (*Summary, error) {
	if err := checkRequired(rows); err != nil {
		return nil, err
	}

	first := rows[0]
	return &Summary{
		Title:               first.Value(ColTitle),
		DigitalCollection:   first.Value(ColDigitalCollection),
		Ark:                 first.Value(ColArk),
		Objects:             objectCount(rows),
		DateRange:           yearRange(collectYears(rows)),
		Languages:           metadata.Terms(rows, ColLanguage),
		Disclaimer:          firstDisclaimer(rows),
		PhysicalCollections: physicalCollections(rows),
	}, nil
}

// physicalCollections counts rows per archival collection, keeping the
// first call number seen for each name, ordered by count descending with
// ties in first-seen order.
func physicalCollections(rows []metadata.Row) []PhysicalCollection {
	index := make(map[string]int)
	var collections []PhysicalCollection

	for _, row := range rows {
		name := row.Value(ColArchivalCollection)
		if name == "" {
			continue
		}

		if i, ok := index[name]; ok {
			collections[i].Count++
			continue
		}

		index[name] = len(collections)
		collections = append(collections, PhysicalCollection{
			Name:       name,
			CallNumber: row.Value(ColArchivalCallNumber),
			Count:      1,
		})
	}

	sort.SliceStable(collections, func(i, j int) bool {
		return collections[i].Count > collections[j].Count
	})

	return collections
}
