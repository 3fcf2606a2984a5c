package analyzer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/schema-advisor/backend/classifier"
)

// loadDocument fetches a URL and parses it into a goquery document plus the
// extracted page data, enriched with readability metadata where available.
func (a *Analyzer) loadDocument(ctx context.Context, pageURL string) (*goquery.Document, classifier.ExtractedPageData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, classifier.ExtractedPageData{}, err
	}
	req.Header.Set("User-Agent", "SchemaAdvisor/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, classifier.ExtractedPageData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, classifier.ExtractedPageData{}, fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, classifier.ExtractedPageData{}, err
	}

	return ParseHTML(buf.String(), pageURL)
}

// ParseHTML parses raw HTML into a document and page data. It is the entry
// point used by the CLI for local files and by tests.
func ParseHTML(html, pageURL string) (*goquery.Document, classifier.ExtractedPageData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, classifier.ExtractedPageData{}, err
	}

	data := classifier.ExtractPageData(doc, pageURL)
	enrichPageData(&data, html, pageURL)
	return doc, data, nil
}

// enrichPageData runs the readability pass and fills the loader-supplied
// fallback fields. Readability failure is not an error; the fields just
// stay empty.
func enrichPageData(data *classifier.ExtractedPageData, html, pageURL string) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		parsedURL = nil
	}

	article, err := readability.FromReader(strings.NewReader(html), parsedURL)
	if err != nil {
		return
	}

	data.Author = article.Byline
	data.SiteName = article.SiteName
	data.Excerpt = article.Excerpt
	data.LeadImage = article.Image
	if article.PublishedTime != nil {
		data.PublishedTime = article.PublishedTime.Format("2006-01-02")
	}
}
