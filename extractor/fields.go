package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"github.com/schema-advisor/backend/classifier"
)

// Every field routine below is best-effort: it tries structured selector
// hints first, then body-text regexes, then a fixed default, and returns ""
// when nothing applies. None of them error.

func selectorText(doc *goquery.Document, selectors ...string) string {
	if doc == nil {
		return ""
	}
	for _, sel := range selectors {
		if s := strings.TrimSpace(doc.Find(sel).First().Text()); s != "" {
			return s
		}
	}
	return ""
}

func selectorAttr(doc *goquery.Document, attr string, selectors ...string) string {
	if doc == nil {
		return ""
	}
	for _, sel := range selectors {
		if v, ok := doc.Find(sel).First().Attr(attr); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

func extractAuthor(doc *goquery.Document, data classifier.ExtractedPageData) string {
	if v := selectorAttr(doc, "content", "meta[name='author']"); v != "" {
		return v
	}
	if v := selectorText(doc, "[itemprop='author']", "[rel='author']", ".author", ".byline"); v != "" {
		return v
	}
	return data.Author
}

func extractPublisher(doc *goquery.Document, data classifier.ExtractedPageData) string {
	if v := selectorAttr(doc, "content", "meta[property='og:site_name']"); v != "" {
		return v
	}
	return data.SiteName
}

func extractPublisherLogo(doc *goquery.Document) string {
	return selectorAttr(doc, "href", "link[rel='icon']", "link[rel='apple-touch-icon']")
}

func extractImage(doc *goquery.Document, data classifier.ExtractedPageData) string {
	if v := selectorAttr(doc, "content", "meta[property='og:image']"); v != "" {
		return v
	}
	if data.LeadImage != "" {
		return data.LeadImage
	}
	return selectorAttr(doc, "src", "article img", "main img", "img")
}

func extractDescription(doc *goquery.Document, data classifier.ExtractedPageData) string {
	if data.MetaDescription != "" {
		return data.MetaDescription
	}
	if data.Excerpt != "" {
		return data.Excerpt
	}
	return selectorAttr(doc, "content", "meta[property='og:description']")
}

func extractDatePublished(doc *goquery.Document, data classifier.ExtractedPageData) string {
	candidates := []string{
		selectorAttr(doc, "content", "meta[property='article:published_time']", "meta[name='date']"),
		selectorAttr(doc, "datetime", "time[datetime]"),
		selectorAttr(doc, "content", "[itemprop='datePublished']"),
		data.PublishedTime,
		firstDateInText(data.BodyText),
	}
	for _, c := range candidates {
		if d := normalizeDate(c); d != "" {
			return d
		}
	}
	return ""
}

func extractDateModified(doc *goquery.Document, data classifier.ExtractedPageData) string {
	candidates := []string{
		selectorAttr(doc, "content", "meta[property='article:modified_time']"),
		selectorAttr(doc, "content", "[itemprop='dateModified']"),
	}
	for _, c := range candidates {
		if d := normalizeDate(c); d != "" {
			return d
		}
	}
	return ""
}

func firstDateInText(text string) string {
	if m := dateJPRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
	}
	return dateISORe.FindString(text)
}

// normalizeDate renders any recognizable date string as ISO 8601
// (YYYY-MM-DD). Unparseable input yields "".
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if m := dateJPRe.FindStringSubmatch(s); m != nil {
		s = fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func extractPrice(doc *goquery.Document, data classifier.ExtractedPageData) (price, currency string) {
	if v := selectorAttr(doc, "content", "meta[property='product:price:amount']", "[itemprop='price']"); v != "" {
		price = v
	} else if v := selectorText(doc, "[itemprop='price']", ".price", "#price"); v != "" {
		price = v
	} else {
		price = data.BodyText
	}

	if m := priceSymbolRe.FindStringSubmatch(price); m != nil {
		return strings.ReplaceAll(m[1], ",", ""), currencyForSymbol(m[0])
	}
	if m := priceYenRe.FindStringSubmatch(price); m != nil {
		return strings.ReplaceAll(m[1], ",", ""), "JPY"
	}
	return "", ""
}

func currencyForSymbol(match string) string {
	switch {
	case strings.Contains(match, "¥"):
		return "JPY"
	case strings.Contains(match, "€"):
		return "EUR"
	case strings.Contains(match, "£"):
		return "GBP"
	default:
		return "USD"
	}
}

func extractRating(doc *goquery.Document, data classifier.ExtractedPageData) string {
	if v := selectorAttr(doc, "content", "[itemprop='ratingValue']"); v != "" {
		return v
	}
	if v := selectorText(doc, "[itemprop='ratingValue']", ".rating-value"); v != "" {
		return v
	}
	if m := ratingFiveRe.FindStringSubmatch(data.BodyText); m != nil {
		return m[1]
	}
	if m := ratingTenRe.FindStringSubmatch(data.BodyText); m != nil {
		return m[1]
	}
	if stars := ratingStarsRe.FindString(data.BodyText); stars != "" {
		return fmt.Sprintf("%d", len([]rune(stars)))
	}
	return ""
}

func extractReviewCount(data classifier.ExtractedPageData) string {
	if m := reviewCountRe.FindStringSubmatch(data.BodyText); m != nil {
		return strings.ReplaceAll(m[1], ",", "")
	}
	return ""
}

func extractBrand(doc *goquery.Document) string {
	if v := selectorAttr(doc, "content", "meta[property='product:brand']"); v != "" {
		return v
	}
	return selectorText(doc, "[itemprop='brand']", ".brand")
}

func extractPhone(doc *goquery.Document, data classifier.ExtractedPageData) string {
	if v := selectorAttr(doc, "href", "a[href^='tel:']"); v != "" {
		return strings.TrimPrefix(v, "tel:")
	}
	if v := selectorText(doc, "[itemprop='telephone']", ".tel", ".phone"); v != "" {
		return v
	}
	return phoneRe.FindString(data.BodyText)
}

func extractAddress(doc *goquery.Document, data classifier.ExtractedPageData) string {
	if v := selectorText(doc, "[itemprop='address']", ".address", "address"); v != "" {
		return strings.Join(strings.Fields(v), " ")
	}
	if m := postalRe.FindStringIndex(data.BodyText); m != nil {
		// Take the postal code plus the address text that follows it.
		tail := data.BodyText[m[0]:]
		if idx := strings.IndexAny(tail, "\n"); idx > 0 {
			tail = tail[:idx]
		}
		if len([]rune(tail)) > 50 {
			tail = string([]rune(tail)[:50])
		}
		return strings.TrimSpace(tail)
	}
	return addressJPRe.FindString(data.BodyText)
}

func extractOpeningHours(data classifier.ExtractedPageData) string {
	if m := hoursRe.FindStringSubmatch(data.BodyText); m != nil {
		return fmt.Sprintf("Mo-Su %s-%s", m[1], m[2])
	}
	// Fallback used when a business page shows no machine-readable hours.
	return "Mo-Fr 09:00-18:00"
}

func extractGeo(doc *goquery.Document) (lat, lon string) {
	pos := selectorAttr(doc, "content", "meta[name='geo.position']", "meta[name='ICBM']")
	if m := geoPositionRe.FindStringSubmatch(pos); m != nil {
		return m[1], m[2]
	}
	lat = selectorAttr(doc, "content", "meta[itemprop='latitude']", "[itemprop='latitude']")
	lon = selectorAttr(doc, "content", "meta[itemprop='longitude']", "[itemprop='longitude']")
	return lat, lon
}

func extractTotalTime(data classifier.ExtractedPageData) string {
	lower := strings.ToLower(data.BodyText)
	if m := durationHourRe.FindStringSubmatch(data.BodyText); m != nil {
		return "PT" + m[1] + "H"
	}
	if m := durationMinRe.FindStringSubmatch(lower); m != nil {
		return "PT" + m[1] + "M"
	}
	if m := durationMinRe.FindStringSubmatch(data.BodyText); m != nil {
		return "PT" + m[1] + "M"
	}
	return ""
}

func extractYield(data classifier.ExtractedPageData) string {
	if m := yieldRe.FindStringSubmatch(data.BodyText); m != nil {
		return m[1] + "人分"
	}
	return ""
}

func extractIngredients(doc *goquery.Document, data classifier.ExtractedPageData) string {
	var items []string
	if doc != nil {
		doc.Find("[class*='ingredient'] li, ul[class*='ingredient'] li").Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				items = append(items, t)
			}
		})
	}
	if len(items) > 0 {
		return strings.Join(items, ", ")
	}
	for _, line := range strings.Split(data.BodyText, "\n") {
		if m := ingredientLineRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

func extractInstructions(data classifier.ExtractedPageData) string {
	var steps []string
	for _, line := range strings.Split(data.BodyText, "\n") {
		if m := instructionLineRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil && m[2] != "" {
			steps = append(steps, m[2])
		}
	}
	return strings.Join(steps, " ")
}

func extractEmploymentType(data classifier.ExtractedPageData) string {
	lower := strings.ToLower(data.BodyText)
	switch {
	case strings.Contains(data.BodyText, "正社員") || strings.Contains(lower, "full-time") || strings.Contains(lower, "full time"):
		return "FULL_TIME"
	case strings.Contains(data.BodyText, "契約社員") || strings.Contains(lower, "contract"):
		return "CONTRACTOR"
	case strings.Contains(data.BodyText, "パート") || strings.Contains(data.BodyText, "アルバイト") || strings.Contains(lower, "part-time"):
		return "PART_TIME"
	}
	return ""
}

func extractSalary(data classifier.ExtractedPageData) (value, currency string) {
	m := salaryRe.FindStringSubmatch(data.BodyText)
	if m == nil {
		return "", ""
	}
	if m[1] != "" {
		return strings.TrimSpace(m[1]), "JPY"
	}
	return strings.TrimSpace(m[2]), "USD"
}

func extractJobLocation(data classifier.ExtractedPageData) string {
	if m := jobLocationRe.FindStringSubmatch(data.BodyText); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractVenue(data classifier.ExtractedPageData) string {
	if m := venueRe.FindStringSubmatch(data.BodyText); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractStartDate(doc *goquery.Document, data classifier.ExtractedPageData) string {
	if v := normalizeDate(selectorAttr(doc, "datetime", "time[datetime]")); v != "" {
		return v
	}
	if m := startDateLineRe.FindStringSubmatch(data.BodyText); m != nil {
		if v := normalizeDate(firstDateInText(m[1])); v != "" {
			return v
		}
	}
	return normalizeDate(firstDateInText(data.BodyText))
}
