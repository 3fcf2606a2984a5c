package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func analyzeTitleTag(doc *goquery.Document) TitleAnalysis {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	length := len(title)

	score := 0
	if length > 0 {
		if length >= 30 && length <= 60 {
			score = 100
		} else if length < 30 {
			score = 50
		} else {
			score = 70
		}
	}

	return TitleAnalysis{
		Title:    title,
		Length:   length,
		HasTitle: length > 0,
		Score:    score,
	}
}

func analyzeMetaTags(doc *goquery.Document) MetaAnalysis {
	meta := MetaAnalysis{}
	score := 0

	meta.Description, _ = doc.Find("meta[name='description']").Attr("content")
	meta.DescriptionLen = len(meta.Description)
	meta.HasDescription = meta.DescriptionLen > 0

	meta.Robots, _ = doc.Find("meta[name='robots']").Attr("content")
	meta.Viewport, _ = doc.Find("meta[name='viewport']").Attr("content")
	meta.Canonical, _ = doc.Find("link[rel='canonical']").Attr("href")

	if meta.HasDescription {
		if meta.DescriptionLen >= 120 && meta.DescriptionLen <= 160 {
			score += 40
		} else {
			score += 20
		}
	}
	if meta.Viewport != "" {
		score += 20
	}
	if meta.Robots != "" {
		score += 20
	}
	if meta.Canonical != "" {
		score += 20
	}

	meta.Score = score
	return meta
}

func analyzeHeaders(doc *goquery.Document) HeaderAnalysis {
	headers := HeaderAnalysis{}

	headers.H1Count = doc.Find("h1").Length()
	headers.H2Count = doc.Find("h2").Length()
	headers.H3Count = doc.Find("h3").Length()

	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		headers.H1Text = append(headers.H1Text, strings.TrimSpace(s.Text()))
	})

	score := 0
	if headers.H1Count == 1 {
		score += 40
	} else if headers.H1Count > 1 {
		score += 20
	}
	if headers.H2Count > 0 {
		score += 30
	}
	if headers.H3Count > 0 {
		score += 30
	}

	headers.Score = score
	return headers
}

func analyzeContent(doc *goquery.Document) ContentAnalysis {
	content := ContentAnalysis{}

	text := doc.Find("body").Text()
	content.WordCount = len(strings.Fields(text))

	images := doc.Find("img")
	content.TotalImages = images.Length()
	content.HasImages = content.TotalImages > 0

	images.Each(func(_ int, s *goquery.Selection) {
		if _, exists := s.Attr("alt"); exists {
			content.ImagesWithAlt++
		}
	})

	score := 0
	if content.WordCount >= 300 {
		score += 30
	}
	if content.HasImages {
		score += 20
		if content.ImagesWithAlt == content.TotalImages {
			score += 30
		} else if content.ImagesWithAlt > 0 {
			score += 20
		}
	}

	content.Score = score
	return content
}

// analyzeLinks counts and categorizes links. Reachability is not checked;
// the advisory report only needs the structural counts.
func analyzeLinks(doc *goquery.Document, baseURL string) LinkAnalysis {
	links := LinkAnalysis{}
	seen := map[string]bool{}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" || href == "#" {
			return
		}

		href = strings.TrimSpace(href)
		if strings.HasPrefix(href, "//") {
			href = "https:" + href
		}
		if seen[href] {
			return
		}
		seen[href] = true

		if strings.HasPrefix(href, baseURL) || strings.HasPrefix(href, "/") {
			links.InternalLinks++
		} else if strings.HasPrefix(href, "http") {
			links.ExternalLinks++
		}
	})

	score := 100
	switch {
	case links.InternalLinks == 0:
		score -= 50
	case links.InternalLinks < 3:
		score -= 30
	case links.InternalLinks < 5:
		score -= 20
	}
	switch {
	case links.ExternalLinks == 0:
		score -= 30
	case links.ExternalLinks > 50:
		score -= 15
	}

	links.Score = score
	return links
}
