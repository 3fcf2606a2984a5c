package classifier

// PageType is the classifier's semantic label for a page's content category.
type PageType string

const (
	TypeArticle       PageType = "article"
	TypeProduct       PageType = "product"
	TypeLocalBusiness PageType = "localBusiness"
	TypeRecipe        PageType = "recipe"
	TypeEvent         PageType = "event"
	TypeFAQ           PageType = "faq"
	TypeHowTo         PageType = "howTo"
	TypeReview        PageType = "review"
	TypeJobPosting    PageType = "jobPosting"
	TypeCourse        PageType = "course"
)

// Scoring weights for each signal source. These are fixed contract values;
// changing them changes classification results for every page.
const (
	weightTitle    = 3.0
	weightMeta     = 2.5
	weightHeadings = 2.0
	weightURL      = 2.0
	weightContent  = 1.0
)

// Special-element bonuses applied after base scoring.
const (
	bonusPriceProduct  = 10.0
	bonusReviewReview  = 8.0
	bonusReviewProduct = 5.0
	bonusEvent         = 12.0
	bonusRecipe        = 15.0
	bonusFAQ           = 15.0
	bonusJob           = 12.0
	bonusCourse        = 10.0
)

// SpecialElements holds the boolean structural detectors used to bias
// page-type scoring beyond keyword matching.
type SpecialElements struct {
	Price  bool `json:"price"`
	Review bool `json:"review"`
	Event  bool `json:"event"`
	Recipe bool `json:"recipe"`
	FAQ    bool `json:"faq"`
	Job    bool `json:"job"`
	Course bool `json:"course"`
}

// ExtractedPageData is the read-only view of a document used by the
// classifier and downstream field extraction. It is derived once per
// analysis pass.
type ExtractedPageData struct {
	Title           string          `json:"title"`
	MetaDescription string          `json:"metaDescription"`
	Headings        []string        `json:"headings"`
	URL             string          `json:"url"`
	BodyText        string          `json:"bodyText"`
	ContentLength   int             `json:"contentLength"`
	Special         SpecialElements `json:"specialElements"`

	// Enrichment fields filled by the document loader (readability pass).
	// Extractors use them as fallbacks; classification ignores them.
	Author        string `json:"author,omitempty"`
	SiteName      string `json:"siteName,omitempty"`
	PublishedTime string `json:"publishedTime,omitempty"`
	LeadImage     string `json:"leadImage,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
}

// ClassificationResult is the ranked outcome of scoring a page against all
// page-type signatures.
//
// Confidence is the primary type's raw weighted score. It is NOT normalized
// to [0,1]: its scale depends on document length and keyword density, so it
// must never be presented as a probability.
type ClassificationResult struct {
	PrimaryType     PageType             `json:"primaryType"`
	SecondaryTypes  []PageType           `json:"secondaryTypes"`
	Confidence      float64              `json:"confidence"`
	AllScores       map[PageType]float64 `json:"allScores"`
	MatchedPatterns map[PageType][]string `json:"matchedPatterns"`
}
