package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/isu-meta/marcup/areacodes"
	"github.com/isu-meta/marcup/helpers"
	"github.com/isu-meta/marcup/marc"
	"github.com/isu-meta/marcup/metadata"
)

const repository = "Special Collections and University Archives, Iowa State University Library."

// builder holds the aggregated inputs for one record build.
type builder struct {
	rows   []metadata.Row
	policy *Policy
	codes  areacodes.Table
	now    func() time.Time
	max    int
	avian  bool
	events bool

	collection        metadata.Row
	digitalCollection string
	physicalNames     []string
	physicalCalls     []string
	findingAidArks    []string
	years             []string
	geographicTerms   []string
	languages         []string
	bioHist           string
	summary           string
	disclaimer        string

	fields []marc.Field
}

func newBuilder(rows []metadata.Row, opts *Options) (*builder, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if err := checkRequired(rows); err != nil {
		return nil, err
	}

	b := &builder{
		rows:   rows,
		policy: opts.Policy,
		codes:  opts.AreaCodes,
		now:    opts.Now,
		max:    opts.MaxTerms,
		avian:  opts.Avian,
		events: opts.IncludeEvents,
	}
	if b.policy == nil {
		b.policy = DefaultPolicy()
	}
	if b.codes == nil {
		b.codes = areacodes.Default()
	}
	if b.now == nil {
		b.now = time.Now
	}
	if b.max <= 0 {
		b.max = DefaultMaxTerms
	}

	b.collection = rows[0]
	b.digitalCollection = b.collection.Value(ColDigitalCollection)
	b.physicalNames = metadata.Terms(rows, ColArchivalCollection)
	b.physicalCalls = metadata.Terms(rows, ColArchivalCallNumber)
	b.findingAidArks = metadata.Terms(rows, ColFindingAidArk)
	b.years = collectYears(rows)
	b.geographicTerms = b.geographic()
	b.languages = metadata.Terms(rows, ColLanguage)
	b.bioHist, b.summary = descriptionSplit(b.collection.Value(ColTitle), b.collection.Value(ColDescription))
	b.disclaimer = firstDisclaimer(rows)

	return b, nil
}

func checkRequired(rows []metadata.Row) error {
	if len(rows) == 0 {
		return ErrNoRows
	}
	for _, column := range requiredColumns {
		if _, ok := rows[0].Lookup(column); !ok {
			return &MissingColumnError{Column: column}
		}
	}
	return nil
}

func (b *builder) geographic() []string {
	if b.avian {
		return metadata.Terms(b.rows, ColGeographicSubjectGeonames)
	}
	return metadata.Terms(b.rows, ColGeographicSubjectFast, ColGeographicSubjectLocal)
}

// run emits the record template in its mandated order. Catalogers review
// the output visually, so the field sequence is part of the contract.
func (b *builder) run() []marc.Field {
	b.addLanguages()
	b.addCatalogingSource()
	b.addAreaCodes()
	b.addTitle()
	b.addProduction()
	b.addPhysicalDescription()
	b.addBioHist()
	b.addSummary()
	b.addAccessNote()
	b.addCitation()
	b.addOriginalVersions()
	b.addDisclaimer()
	b.addPersonalNameSubjects()
	b.addCorporateNameSubjects()
	b.addEventSubjects()
	b.addTopicSubjects()
	b.addGeographicSubjects()
	b.addGenreForms()
	b.addPersonalNames()
	b.addCorporateNames()
	b.addDigitalCollections()
	b.addCollectionLink()
	b.addFindingAidLinks()
	return b.fields
}

func (b *builder) add(f marc.Field) {
	b.fields = append(b.fields, f)
}

// addLanguages emits 041 when the collection holds more than one language,
// then the fixed-length data field. 041 precedes 008 in the template.
func (b *builder) addLanguages() {
	if len(b.languages) > 1 {
		b.add(marc.NewField("041", ' ', ' ', marc.Repeat('a', b.languages...)...))
	}

	lang := ""
	if len(b.languages) > 0 {
		lang = b.languages[0]
	}
	b.add(marc.NewControlField("008", controlData(b.now(), lang)))
}

func (b *builder) addCatalogingSource() {
	b.add(marc.NewField("040", ' ', ' ',
		marc.Sub('a', "IWA"),
		marc.Sub('b', "eng"),
		marc.Sub('e', "dacs"),
		marc.Sub('e', "rda"),
		marc.Sub('c', "IWA"),
	))
}

func (b *builder) addAreaCodes() {
	codes := areaCodeList(b.geographicTerms, b.codes)
	if len(codes) == 0 {
		return
	}
	b.add(marc.NewField("043", ' ', ' ', marc.Repeat('a', codes...)...))
}

func (b *builder) addTitle() {
	ind1, ind2 := byte(' '), byte(' ')
	if b.policy.TitleIndicators {
		ind1, ind2 = '1', '0'
	}

	subs := titleSubfields(b.collection.Value(ColTitle))
	subs = append(subs, marc.Sub('f', yearRange(b.years)))
	b.add(marc.NewField("245", ind1, ind2, subs...))
}

func (b *builder) addProduction() {
	b.add(marc.NewField("264", ' ', '1',
		marc.Sub('a', "Ames, Iowa :"),
		marc.Sub('b', "Iowa State University Library,"),
	))
}

func (b *builder) addPhysicalDescription() {
	b.add(marc.NewField("300", ' ', ' ',
		marc.Sub('a', fmt.Sprintf("1 online resource (%d digital objects)", objectCount(b.rows))),
	))
}

func (b *builder) addBioHist() {
	b.add(marc.NewField("545", ' ', ' ', marc.Sub('a', b.bioHist)))
}

func (b *builder) addSummary() {
	b.add(marc.NewField("520", '2', ' ', marc.Sub('a', b.summary)))
}

func (b *builder) addAccessNote() {
	b.add(marc.NewField("506", ' ', ' ',
		marc.Sub('a', "For copyright and re-use status, please consult the individual objects record."),
	))
}

// addCitation builds the preferred citation from the most frequent
// physical collections, zipped with their call numbers.
func (b *builder) addCitation() {
	names := capped(b.physicalNames, b.max)
	calls := capped(b.physicalCalls, b.max)

	items := make([]string, 0, len(names))
	for i, name := range names {
		if i >= len(calls) {
			break
		}
		if b.policy.TitleCaseProvenance {
			name = helpers.TitleCase(name)
		}
		item := name + ", " + calls[i]
		if b.policy.CitationItemComma {
			item += ","
		}
		items = append(items, item)
	}

	citation := fmt.Sprintf("%s, %s, %s", b.digitalCollection, strings.Join(items, " "), repository)
	b.add(marc.NewField("524", ' ', ' ', marc.Sub('a', citation)))
}

// addOriginalVersions emits one field per physical collection, uncapped:
// every originals location is worth recording.
func (b *builder) addOriginalVersions() {
	for i, name := range b.physicalNames {
		if i >= len(b.physicalCalls) {
			break
		}
		if b.policy.TitleCaseProvenance {
			name = helpers.TitleCase(name)
		}
		b.add(marc.NewField("534", ' ', ' ',
			marc.Sub('p', "Originals can be found in:"),
			marc.Sub('t', name),
			marc.Sub('o', b.physicalCalls[i]),
			marc.Sub('l', repository),
		))
	}
}

func (b *builder) addDisclaimer() {
	if b.disclaimer == "" {
		return
	}
	b.add(marc.NewField("500", ' ', ' ', marc.Sub('a', b.disclaimer)))
}

func (b *builder) addPersonalNameSubjects() {
	pairs := capped(metadata.TermsWithSource(b.rows, ColPersonalNameSubject), b.max)
	b.addClassified("600", '1', pairs)
}

func (b *builder) addCorporateNameSubjects() {
	pairs := capped(metadata.TermsWithSource(b.rows, ColCorporateNameSubject), b.max)
	b.addClassified("610", '2', pairs)
}

func (b *builder) addEventSubjects() {
	if !b.events {
		return
	}
	terms := capped(metadata.Terms(b.rows, ColEventSubject), b.max)
	b.addTerms("611", '2', '0', terms)
}

func (b *builder) addTopicSubjects() {
	terms := capped(metadata.Terms(b.rows, ColTopicalSubjectFast, ColTopicalSubjectLocal), b.max)
	b.addTerms("650", ' ', '7', terms, marc.Sub('2', "fast"))
}

func (b *builder) addGeographicSubjects() {
	terms := capped(b.geographicTerms, b.max)
	b.addTerms("651", ' ', '7', terms, marc.Sub('2', "fast"))
}

// addGenreForms emits every genre term, uncapped, so the record reflects
// all object genres present in the collection.
func (b *builder) addGenreForms() {
	b.addTerms("655", ' ', '7', metadata.Terms(b.rows, ColAATGenre), marc.Sub('2', "aat"))
}

func (b *builder) addPersonalNames() {
	terms := capped(metadata.Terms(b.rows, ColPersonalCreator, ColInterviewee, ColInterviewer, ColPersonalContributor), b.max)
	b.addTerms("700", '1', ' ', terms)
}

func (b *builder) addCorporateNames() {
	terms := capped(metadata.Terms(b.rows, ColCorporateCreator, ColCorporateContributor), b.max)
	b.addTerms("710", '2', ' ', terms)
}

func (b *builder) addDigitalCollections() {
	b.add(marc.NewField("710", '2', ' ',
		marc.Sub('a', "Iowa State University."),
		marc.Sub('b', "Library"),
		marc.Sub('b', "Digital Collections."),
	))
}

func (b *builder) addCollectionLink() {
	subs := []marc.Subfield{
		marc.Sub('3', b.collection.Value(ColTitle)),
		marc.Sub('u', b.collection.Value(ColArk)),
	}
	if b.policy.AccessStatus {
		subs = append(subs, marc.Sub('7', "0"))
	}
	b.add(marc.NewField("856", '4', '0', subs...))
}

func (b *builder) addFindingAidLinks() {
	names := capped(b.physicalNames, b.max)
	arks := capped(b.findingAidArks, b.max)

	for i, name := range names {
		if i >= len(arks) {
			break
		}

		label := name
		if b.policy.TitleCaseProvenance {
			label = helpers.TitleCase(label)
		}
		ind2 := byte('0')
		if b.policy.FindingAidLabel {
			label = "Finding aid for " + label
			ind2 = '2'
		}

		b.add(marc.NewField("856", '4', ind2,
			marc.Sub('3', label),
			marc.Sub('u', arks[i]),
		))
	}
}

// addTerms emits one field per non-empty term, keeping aggregation order.
func (b *builder) addTerms(tag string, ind1, ind2 byte, terms []string, extra ...marc.Subfield) {
	for _, term := range terms {
		if term == "" {
			continue
		}
		subs := append([]marc.Subfield{marc.Sub('a', term)}, extra...)
		b.add(marc.NewField(tag, ind1, ind2, subs...))
	}
}

// addClassified emits one field per pair, classified by authority source.
func (b *builder) addClassified(tag string, ind1 byte, pairs []metadata.TermSource) {
	for _, pair := range pairs {
		if f, ok := classifyTerm(tag, pair, ind1, fallbackIndicator); ok {
			b.add(f)
		}
	}
}

func capped[T any](s []T, max int) []T {
	if len(s) > max {
		return s[:max]
	}
	return s
}
