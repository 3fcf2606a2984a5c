// Package classifier infers a page's semantic content type from weighted
// keyword, URL, title and structural signals. Scoring is deterministic
// keyword/regex arithmetic, not learned: the same document and URL always
// produce the same result.
package classifier

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Classifier scores documents against the static page-type signature table.
// The zero value is usable; the signature table is package-wide immutable
// state, so one Classifier may serve concurrent analyses.
type Classifier struct{}

// New creates a Classifier.
func New() *Classifier {
	return &Classifier{}
}

// DefaultResult is the safe fallback returned when extraction or scoring
// fails: Article with zero confidence, so the rest of the pipeline can
// still run.
func DefaultResult() ClassificationResult {
	return ClassificationResult{
		PrimaryType:     TypeArticle,
		SecondaryTypes:  []PageType{},
		Confidence:      0,
		AllScores:       map[PageType]float64{},
		MatchedPatterns: map[PageType][]string{},
	}
}

// AnalyzePage classifies a parsed document. It never fails: any panic during
// extraction or scoring degrades to DefaultResult rather than propagating,
// because classification failure must not block the rest of the pipeline.
func (c *Classifier) AnalyzePage(doc *goquery.Document, pageURL string) (result ClassificationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = DefaultResult()
		}
	}()

	data := ExtractPageData(doc, pageURL)
	return c.Classify(data)
}

// Classify scores already-extracted page data. Exposed separately so the
// extraction pass can be shared with downstream consumers.
func (c *Classifier) Classify(data ExtractedPageData) ClassificationResult {
	scores := make(map[PageType]float64, len(compiledSignatures))
	matched := make(map[PageType][]string, len(compiledSignatures))

	lowerTitle := strings.ToLower(data.Title)
	lowerURL := strings.ToLower(data.URL)
	lowerBody := strings.ToLower(data.BodyText)
	headingText := strings.Join(data.Headings, " ")

	for _, sig := range compiledSignatures {
		var score float64
		var hits []string

		titleHits := countKeywordHits(sig.keywordRes, data.Title)
		titleHits += countPatternHits(sig.TitlePatterns, lowerTitle, "title", &hits)
		score += weightTitle * float64(titleHits)

		score += weightMeta * float64(countKeywordHits(sig.keywordRes, data.MetaDescription))
		score += weightHeadings * float64(countKeywordHits(sig.keywordRes, headingText))
		score += weightURL * float64(countPatternHits(sig.URLPatterns, lowerURL, "url", &hits))

		contentHits := countKeywordHits(sig.keywordRes, data.BodyText)
		contentHits += countPatternHits(sig.ContentPatterns, lowerBody, "content", &hits)
		score += weightContent * float64(contentHits)

		scores[sig.Type] = score
		if len(hits) > 0 {
			matched[sig.Type] = hits
		}
	}

	applySpecialBonuses(scores, matched, data.Special)

	ranked := rankTypes(scores)
	primary := ranked[0]

	secondary := make([]PageType, 0, 2)
	for _, t := range ranked[1:] {
		if len(secondary) == 2 {
			break
		}
		if scores[t] > 0 {
			secondary = append(secondary, t)
		}
	}

	return ClassificationResult{
		PrimaryType:     primary,
		SecondaryTypes:  secondary,
		Confidence:      scores[primary],
		AllScores:       scores,
		MatchedPatterns: matched,
	}
}

// countKeywordHits sums regex occurrences of every keyword. Repeated
// occurrences compound the score on purpose.
func countKeywordHits(res []*regexp.Regexp, text string) int {
	if text == "" {
		return 0
	}
	hits := 0
	for _, re := range res {
		hits += len(re.FindAllStringIndex(text, -1))
	}
	return hits
}

// countPatternHits counts substring containment, at most once per pattern.
func countPatternHits(patterns []string, lowerText, source string, matchedOut *[]string) int {
	hits := 0
	for _, p := range patterns {
		if strings.Contains(lowerText, strings.ToLower(p)) {
			hits++
			*matchedOut = append(*matchedOut, fmt.Sprintf("%s:%s", source, p))
		}
	}
	return hits
}

func applySpecialBonuses(scores map[PageType]float64, matched map[PageType][]string, special SpecialElements) {
	bonus := func(t PageType, amount float64, label string) {
		scores[t] += amount
		matched[t] = append(matched[t], "special:"+label)
	}

	if special.Price {
		bonus(TypeProduct, bonusPriceProduct, "price")
	}
	if special.Review {
		bonus(TypeReview, bonusReviewReview, "review")
		bonus(TypeProduct, bonusReviewProduct, "review")
	}
	if special.Event {
		bonus(TypeEvent, bonusEvent, "event")
	}
	if special.Recipe {
		bonus(TypeRecipe, bonusRecipe, "recipe")
	}
	if special.FAQ {
		bonus(TypeFAQ, bonusFAQ, "faq")
	}
	if special.Job {
		bonus(TypeJobPosting, bonusJob, "job")
	}
	if special.Course {
		bonus(TypeCourse, bonusCourse, "course")
	}
}

// rankTypes sorts all types descending by score. The sort is stable over
// signature declaration order, so a document matching nothing still ranks
// Article first deterministically.
func rankTypes(scores map[PageType]float64) []PageType {
	ranked := make([]PageType, 0, len(pageSignatures))
	for _, sig := range pageSignatures {
		ranked = append(ranked, sig.Type)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}
