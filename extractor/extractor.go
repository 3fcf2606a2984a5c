// Package extractor pulls concrete field values out of a parsed document
// for a target schema type. Extraction is best-effort by contract: a field
// whose target is absent comes back as an empty string, never an error, so
// template filling downstream always succeeds with possibly blank fields.
package extractor

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/pemistahl/lingua-go"

	"github.com/schema-advisor/backend/classifier"
)

var (
	langOnce     sync.Once
	langDetector lingua.LanguageDetector
)

// DetectLanguage guesses the page language as an ISO 639-1 code. The
// detector is built lazily because constructing the language models is the
// expensive part.
func DetectLanguage(text string) string {
	langOnce.Do(func() {
		langDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Japanese).
			Build()
	})
	runes := []rune(text)
	if len(runes) > 400 {
		runes = runes[:400]
	}
	if lang, ok := langDetector.DetectLanguageOf(string(runes)); ok {
		return strings.ToLower(lang.IsoCode639_1().String())
	}
	return ""
}

// Extract produces the placeholder values for one schema type. The returned
// map always contains every placeholder the catalog template for that type
// can reference; values may be empty.
func Extract(schemaType string, doc *goquery.Document, data classifier.ExtractedPageData) map[string]string {
	values := map[string]string{
		"name":        data.Title,
		"url":         data.URL,
		"description": extractDescription(doc, data),
	}

	switch schemaType {
	case "Article", "NewsArticle", "BlogPosting":
		values["headline"] = data.Title
		values["author"] = extractAuthor(doc, data)
		values["publisher"] = extractPublisher(doc, data)
		values["publisherLogo"] = extractPublisherLogo(doc)
		values["image"] = extractImage(doc, data)
		values["datePublished"] = extractDatePublished(doc, data)
		values["dateModified"] = extractDateModified(doc, data)
		values["inLanguage"] = DetectLanguage(data.BodyText)

	case "Product":
		price, currency := extractPrice(doc, data)
		values["image"] = extractImage(doc, data)
		values["brand"] = extractBrand(doc)
		values["price"] = price
		values["priceCurrency"] = currency
		values["availability"] = "InStock"
		values["ratingValue"] = extractRating(doc, data)
		values["reviewCount"] = extractReviewCount(data)

	case "LocalBusiness", "Restaurant", "Store", "Hotel", "Hospital", "School", "Gym", "BeautySalon":
		lat, lon := extractGeo(doc)
		values["image"] = extractImage(doc, data)
		values["telephone"] = extractPhone(doc, data)
		values["streetAddress"] = extractAddress(doc, data)
		values["openingHours"] = extractOpeningHours(data)
		values["latitude"] = lat
		values["longitude"] = lon

	case "Recipe":
		values["image"] = extractImage(doc, data)
		values["author"] = extractAuthor(doc, data)
		values["totalTime"] = extractTotalTime(data)
		values["recipeYield"] = extractYield(data)
		values["recipeIngredient"] = extractIngredients(doc, data)
		values["recipeInstructions"] = extractInstructions(data)

	case "Event":
		price, currency := extractPrice(doc, data)
		values["image"] = extractImage(doc, data)
		values["startDate"] = extractStartDate(doc, data)
		values["endDate"] = ""
		values["locationName"] = extractVenue(data)
		values["locationAddress"] = extractAddress(doc, data)
		values["price"] = price
		values["priceCurrency"] = currency

	case "FAQPage":
		// The plan layer expands one Question node per visible pair; these
		// cover the single-entry template form.
		if items := FAQItems(doc, data); len(items) > 0 {
			values["question"] = items[0].Question
			values["answer"] = items[0].Answer
		} else {
			values["question"] = ""
			values["answer"] = ""
		}

	case "HowTo":
		values["totalTime"] = extractTotalTime(data)
		if steps := HowToSteps(doc, data); len(steps) > 0 {
			values["stepName"] = steps[0].Name
			values["stepText"] = steps[0].Text
		} else {
			values["stepName"] = ""
			values["stepText"] = ""
		}

	case "Review":
		values["itemName"] = data.Title
		values["ratingValue"] = extractRating(doc, data)
		values["author"] = extractAuthor(doc, data)
		values["reviewBody"] = extractDescription(doc, data)

	case "JobPosting":
		salary, salaryCurrency := extractSalary(data)
		values["title"] = data.Title
		values["hiringOrganization"] = extractPublisher(doc, data)
		values["datePosted"] = extractDatePublished(doc, data)
		values["employmentType"] = extractEmploymentType(data)
		values["jobLocation"] = extractJobLocation(data)
		values["salary"] = salary
		values["salaryCurrency"] = salaryCurrency

	case "Course":
		values["provider"] = extractPublisher(doc, data)

	case "Organization":
		values["logo"] = extractPublisherLogo(doc)
		values["telephone"] = extractPhone(doc, data)

	case "Person":
		values["jobTitle"] = ""
		values["image"] = extractImage(doc, data)

	case "BreadcrumbList":
		if crumbs := Breadcrumbs(doc, data); len(crumbs) > 0 {
			values["breadcrumbName"] = crumbs[0].Name
			values["breadcrumbURL"] = crumbs[0].URL
		} else {
			values["breadcrumbName"] = ""
			values["breadcrumbURL"] = ""
		}
	}

	return values
}
