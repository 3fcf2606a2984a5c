package analyzer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/schema-advisor/backend/classifier"
	"github.com/schema-advisor/backend/extractor"
	"github.com/schema-advisor/backend/schema"
)

var questionHeadingRe = regexp.MustCompile(`(?i)^(?:what|how|why|when|where|who|which|can|does|is|are|should)\b|[?？]\s*$|とは$|とは\s`)

// analyzeAIReadiness scores how well the page serves answer-oriented AI
// search engines: explicit questions, extractable answers and
// machine-readable markup.
func analyzeAIReadiness(doc *goquery.Document, data classifier.ExtractedPageData, inv *schema.Inventory) AIReadinessAnalysis {
	ai := AIReadinessAnalysis{
		TotalHeadings: len(data.Headings),
		HasFAQBlock:   data.Special.FAQ,
		Language:      extractor.DetectLanguage(data.BodyText),
	}

	for _, h := range data.Headings {
		if questionHeadingRe.MatchString(strings.TrimSpace(h)) {
			ai.QuestionHeadings++
		}
	}

	// A lead paragraph long enough to stand alone as an answer summary.
	if lead := strings.TrimSpace(doc.Find("article p, main p, body p").First().Text()); len([]rune(lead)) >= 80 {
		ai.HasLeadSummary = true
	}

	if inv != nil {
		for _, block := range inv.JSONLD {
			if block.IsValid {
				ai.StructuredDataBlocks++
			}
		}
	}

	score := 0
	if ai.QuestionHeadings > 0 {
		score += 25
	}
	if ai.HasFAQBlock {
		score += 25
	}
	if ai.HasLeadSummary {
		score += 25
	}
	if ai.StructuredDataBlocks > 0 {
		score += 25
	}
	ai.Score = score

	return ai
}

func aiRecommendations(ai AIReadinessAnalysis) []string {
	var recs []string
	if ai.QuestionHeadings == 0 {
		recs = append(recs, "Phrase some headings as questions so AI search engines can match them to user queries")
	}
	if !ai.HasLeadSummary {
		recs = append(recs, "Open the page with a self-contained summary paragraph that can be quoted as a direct answer")
	}
	if !ai.HasFAQBlock {
		recs = append(recs, "Add a Q&A section for the most common questions about this topic")
	}
	if ai.StructuredDataBlocks == 0 {
		recs = append(recs, "Add JSON-LD structured data; AI search engines rely on it to understand the page")
	}
	return recs
}
