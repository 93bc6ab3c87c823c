package catalog

// Column names recognized in collection metadata. Collection-level columns
// are read from the first row; the rest aggregate across all rows. Name
// and subject columns may carry a parallel authority-URI column named with
// metadata.SourceSuffix.
const (
	ColTitle             = "title"
	ColDigitalCollection = "digital_collection"
	ColArk               = "ark"
	ColDescription       = "description"
	ColDisclaimer        = "disclaimer"

	ColDateOriginal = "date_original"
	ColLanguage     = "language"

	ColPersonalNameSubject  = "personal_name_subject"
	ColCorporateNameSubject = "corporate_name_subject"
	ColEventSubject         = "event_subject"

	ColTopicalSubjectFast  = "topical_subject_fast"
	ColTopicalSubjectLocal = "topical_subject_local"

	ColGeographicSubjectFast     = "geographic_subject_fast"
	ColGeographicSubjectLocal    = "geographic_subject_local"
	ColGeographicSubjectGeonames = "geographic_subject_geonames"

	ColAATGenre = "aat_genre"

	ColPersonalCreator      = "personal_creator"
	ColInterviewee          = "interviewee"
	ColInterviewer          = "interviewer"
	ColPersonalContributor  = "personal_contributor"
	ColCorporateCreator     = "corporate_creator"
	ColCorporateContributor = "corporate_contributor"

	ColArchivalCollection = "archival_collection"
	ColArchivalCallNumber = "archival_call_number"
	ColFindingAidArk      = "finding_aid_ark"
)

// requiredColumns must be present on the first metadata row before a
// record can be derived.
var requiredColumns = []string{ColTitle, ColDigitalCollection, ColArk, ColDescription}
