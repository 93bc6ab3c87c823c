package metadata

import (
	"sort"
	"strings"
)

// Delimiter separates multiple values within a single cell.
const Delimiter = ";"

// SourceSuffix names the parallel column holding authority URIs for a term
// column.
const SourceSuffix = "_valueURI"

// TermSource pairs a term with the authority URI it was cataloged under.
// URI is empty for uncontrolled terms.
type TermSource struct {
	Term string
	URI  string
}

// Terms scans the given columns across all rows and returns every distinct
// cell piece, ordered by descending occurrence count. Cells split on
// Delimiter and pieces are counted as-is, without trimming. Ties keep
// first-seen order.
func Terms(rows []Row, columns ...string) []string {
	return TermsDelimited(rows, Delimiter, columns...)
}

// TermsDelimited is Terms with a caller-chosen delimiter.
func TermsDelimited(rows []Row, delim string, columns ...string) []string {
	var pieces []string
	for _, column := range columns {
		for _, row := range rows {
			cell := row.Value(column)
			if cell == "" {
				continue
			}
			pieces = append(pieces, strings.Split(cell, delim)...)
		}
	}
	return rankByCount(pieces)
}

// TermsWithSource scans column together with its SourceSuffix companion and
// returns distinct term/URI pairs in descending count order. The term cell
// drives the pairing: the URI cell is split only when the term cell holds
// multiple pieces, missing URI pieces become "", and URI pieces beyond the
// term count are dropped.
func TermsWithSource(rows []Row, column string) []TermSource {
	uriColumn := column + SourceSuffix

	var pairs []TermSource
	for _, row := range rows {
		cell := row.Value(column)
		if cell == "" {
			continue
		}

		uriCell := row.Value(uriColumn)
		terms := strings.Split(cell, Delimiter)
		if len(terms) == 1 {
			pairs = append(pairs, TermSource{Term: cell, URI: uriCell})
			continue
		}

		uris := strings.Split(uriCell, Delimiter)
		for i, term := range terms {
			uri := ""
			if i < len(uris) {
				uri = uris[i]
			}
			pairs = append(pairs, TermSource{Term: term, URI: uri})
		}
	}
	return rankByCount(pairs)
}

// rankByCount orders the distinct values of keys by descending occurrence,
// breaking ties by first appearance. The sort must be stable: callers
// depend on equal-count values keeping their insertion order. Empty input
// yields nil.
func rankByCount[K comparable](keys []K) []K {
	if len(keys) == 0 {
		return nil
	}

	counts := make(map[K]int, len(keys))
	order := make([]K, 0, len(keys))
	for _, k := range keys {
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	return order
}
