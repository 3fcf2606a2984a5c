package extractor

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/schema-advisor/backend/classifier"
)

// FAQItem is one visible question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HowToStep is one visible instruction step.
type HowToStep struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// BreadcrumbItem is one entry of a breadcrumb trail.
type BreadcrumbItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FAQItems collects question/answer pairs, first from definition lists and
// FAQ-classed markup, then from Q:/A: prefixed text lines.
func FAQItems(doc *goquery.Document, data classifier.ExtractedPageData) []FAQItem {
	var items []FAQItem

	if doc != nil {
		doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
			questions := dl.Find("dt")
			answers := dl.Find("dd")
			for i := 0; i < questions.Length() && i < answers.Length(); i++ {
				q := strings.TrimSpace(questions.Eq(i).Text())
				a := strings.TrimSpace(answers.Eq(i).Text())
				if q != "" && a != "" {
					items = append(items, FAQItem{Question: stripQAPrefix(q), Answer: stripQAPrefix(a)})
				}
			}
		})
	}
	if len(items) > 0 {
		return items
	}

	var current *FAQItem
	for _, line := range strings.Split(data.BodyText, "\n") {
		if m := questionLineRe.FindStringSubmatch(line); m != nil {
			if current != nil && current.Answer != "" {
				items = append(items, *current)
			}
			current = &FAQItem{Question: strings.TrimSpace(m[1])}
			continue
		}
		if m := answerLineRe.FindStringSubmatch(line); m != nil && current != nil {
			current.Answer = strings.TrimSpace(m[1])
		}
	}
	if current != nil && current.Answer != "" {
		items = append(items, *current)
	}
	return items
}

func stripQAPrefix(s string) string {
	if m := questionLineRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := answerLineRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// HowToSteps collects ordered instruction steps from numbered text lines or
// ordered lists.
func HowToSteps(doc *goquery.Document, data classifier.ExtractedPageData) []HowToStep {
	var steps []HowToStep

	for _, line := range strings.Split(data.BodyText, "\n") {
		if m := instructionLineRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil && m[2] != "" {
			name := "Step " + m[1]
			if m[1] == "" {
				name = "Step"
			}
			steps = append(steps, HowToStep{Name: name, Text: strings.TrimSpace(m[2])})
		}
	}
	if len(steps) > 0 {
		return steps
	}

	if doc != nil {
		doc.Find("ol li").Each(func(i int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				steps = append(steps, HowToStep{Name: "Step " + strconv.Itoa(i+1), Text: t})
			}
		})
	}
	return steps
}

// Breadcrumbs reads a visible breadcrumb trail, falling back to URL path
// segments when the page shows none.
func Breadcrumbs(doc *goquery.Document, data classifier.ExtractedPageData) []BreadcrumbItem {
	var items []BreadcrumbItem

	if doc != nil {
		doc.Find("nav[aria-label='breadcrumb'] a, .breadcrumb a, [class*='breadcrumb'] a").Each(func(_ int, s *goquery.Selection) {
			name := strings.TrimSpace(s.Text())
			href, _ := s.Attr("href")
			if name != "" {
				items = append(items, BreadcrumbItem{Name: name, URL: href})
			}
		})
	}
	if len(items) > 0 {
		return items
	}

	base, path := splitURLPath(data.URL)
	if path == "" {
		return items
	}
	accumulated := base
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if segment == "" {
			continue
		}
		accumulated += "/" + segment
		items = append(items, BreadcrumbItem{Name: segment, URL: accumulated})
	}
	return items
}

func splitURLPath(raw string) (base, path string) {
	rest := raw
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+3:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			return raw[:len(raw)-len(rest)+slash], rest[slash:]
		}
		return raw, ""
	}
	if slash := strings.Index(rest, "/"); slash >= 0 {
		return rest[:slash], rest[slash:]
	}
	return raw, ""
}
