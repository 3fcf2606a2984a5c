package classifier

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	priceTextRe  = regexp.MustCompile(`[¥$€£]\s*[0-9][0-9,]*|[0-9][0-9,]*\s*円`)
	ratingTextRe = regexp.MustCompile(`[★☆]|[0-5](?:\.[0-9])?\s*(?:点|/\s*5)`)
	eventTextRe  = regexp.MustCompile(`開催日|開催場所|開演|doors open|date and time`)
	recipeTextRe = regexp.MustCompile(`(?i)材料|作り方|調理時間|ingredients|instructions`)
	faqTextRe    = regexp.MustCompile(`(?im)^\s*(?:Q|Ｑ)[:：.．]|^\s*(?:A|Ａ)[:：.．]|質問[:：]|回答[:：]`)
	jobTextRe    = regexp.MustCompile(`(?i)応募資格|雇用形態|求人情報|apply now|job description`)
	courseTextRe = regexp.MustCompile(`(?i)カリキュラム|受講料|受講期間|syllabus|enroll`)
)

// ExtractPageData derives the classifier's read-only view of a document.
// It never fails; a degenerate document yields zero values throughout.
func ExtractPageData(doc *goquery.Document, pageURL string) ExtractedPageData {
	data := ExtractedPageData{URL: pageURL}
	if doc == nil {
		return data
	}

	data.Title = strings.TrimSpace(doc.Find("title").First().Text())
	data.MetaDescription, _ = doc.Find("meta[name='description']").Attr("content")

	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			data.Headings = append(data.Headings, text)
		}
	})

	data.BodyText = normalizeSpace(doc.Find("body").Text())
	data.ContentLength = len([]rune(data.BodyText))
	data.Special = detectSpecialElements(doc, data.BodyText)

	return data
}

// normalizeSpace collapses runs of whitespace but keeps newlines, so the
// line-anchored FAQ patterns still see line starts.
func normalizeSpace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// detectSpecialElements runs the seven independent structural detectors.
// Each combines a body-text pattern with a class/id hint, so either source
// of evidence is enough.
func detectSpecialElements(doc *goquery.Document, bodyText string) SpecialElements {
	return SpecialElements{
		Price:  priceTextRe.MatchString(bodyText) || hasClassHint(doc, "price"),
		Review: ratingTextRe.MatchString(bodyText) || hasClassHint(doc, "rating") || hasClassHint(doc, "review"),
		Event:  eventTextRe.MatchString(bodyText) || doc.Find("time[datetime]").Length() > 0 || hasClassHint(doc, "event"),
		Recipe: recipeTextRe.MatchString(bodyText) || hasClassHint(doc, "recipe") || hasClassHint(doc, "ingredient"),
		FAQ:    faqTextRe.MatchString(bodyText) || hasClassHint(doc, "faq") || hasClassHint(doc, "accordion"),
		Job:    jobTextRe.MatchString(bodyText) || hasClassHint(doc, "job") || hasClassHint(doc, "recruit"),
		Course: courseTextRe.MatchString(bodyText) || hasClassHint(doc, "course") || hasClassHint(doc, "curriculum"),
	}
}

func hasClassHint(doc *goquery.Document, hint string) bool {
	return doc.Find("[class*='"+hint+"'], [id*='"+hint+"']").Length() > 0
}
