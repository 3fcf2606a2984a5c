package recommend

import "github.com/schema-advisor/backend/classifier"

// tiers is the primary/secondary/optional schema set for one page type.
// The three lists never overlap (verified in tests).
type tiers struct {
	Primary   []string
	Secondary []string
	Optional  []string
}

// tierMap binds each page type to its schema tiers. Unknown page types fall
// back to the Article mapping.
var tierMap = map[classifier.PageType]tiers{
	classifier.TypeArticle: {
		Primary:   []string{"Article"},
		Secondary: []string{"BreadcrumbList", "Organization"},
		Optional:  []string{"Person", "FAQPage"},
	},
	classifier.TypeProduct: {
		Primary:   []string{"Product"},
		Secondary: []string{"BreadcrumbList", "Organization"},
		Optional:  []string{"Review", "FAQPage"},
	},
	classifier.TypeLocalBusiness: {
		Primary:   []string{"LocalBusiness"},
		Secondary: []string{"Organization", "BreadcrumbList"},
		Optional:  []string{"FAQPage", "Review"},
	},
	classifier.TypeRecipe: {
		Primary:   []string{"Recipe"},
		Secondary: []string{"BreadcrumbList", "Person"},
		Optional:  []string{"Review", "FAQPage"},
	},
	classifier.TypeEvent: {
		Primary:   []string{"Event"},
		Secondary: []string{"Organization", "BreadcrumbList"},
		Optional:  []string{"FAQPage"},
	},
	classifier.TypeFAQ: {
		Primary:   []string{"FAQPage"},
		Secondary: []string{"BreadcrumbList", "Organization"},
		Optional:  []string{"Article"},
	},
	classifier.TypeHowTo: {
		Primary:   []string{"HowTo"},
		Secondary: []string{"BreadcrumbList", "Article"},
		Optional:  []string{"FAQPage", "Person"},
	},
	classifier.TypeReview: {
		Primary:   []string{"Review"},
		Secondary: []string{"Product", "BreadcrumbList"},
		Optional:  []string{"Person", "Organization"},
	},
	classifier.TypeJobPosting: {
		Primary:   []string{"JobPosting"},
		Secondary: []string{"Organization", "BreadcrumbList"},
		Optional:  []string{"FAQPage"},
	},
	classifier.TypeCourse: {
		Primary:   []string{"Course"},
		Secondary: []string{"Organization", "BreadcrumbList"},
		Optional:  []string{"FAQPage", "Review"},
	},
}

// Per-schema implementation difficulty. Hand-tuned contract values.
var difficulty = map[string]string{
	"Article":        "easy",
	"NewsArticle":    "easy",
	"BlogPosting":    "easy",
	"Product":        "medium",
	"LocalBusiness":  "medium",
	"Recipe":         "hard",
	"Event":          "medium",
	"FAQPage":        "easy",
	"HowTo":          "medium",
	"Review":         "easy",
	"JobPosting":     "medium",
	"Course":         "medium",
	"Organization":   "easy",
	"Person":         "easy",
	"BreadcrumbList": "easy",
}

// Per-schema SEO value on a 0-100 scale. Hand-tuned contract values.
var seoValue = map[string]int{
	"Article":        85,
	"NewsArticle":    85,
	"BlogPosting":    80,
	"Product":        95,
	"LocalBusiness":  90,
	"Recipe":         90,
	"Event":          85,
	"FAQPage":        90,
	"HowTo":          80,
	"Review":         85,
	"JobPosting":     85,
	"Course":         75,
	"Organization":   70,
	"Person":         60,
	"BreadcrumbList": 65,
}

// Per-schema estimated implementation time.
var implementationTime = map[string]string{
	"Article":        "30min",
	"NewsArticle":    "30min",
	"BlogPosting":    "30min",
	"Product":        "1-2h",
	"LocalBusiness":  "1-2h",
	"Recipe":         "2-3h",
	"Event":          "1-2h",
	"FAQPage":        "1h",
	"HowTo":          "1-2h",
	"Review":         "30min",
	"JobPosting":     "1-2h",
	"Course":         "1h",
	"Organization":   "30min",
	"Person":         "15min",
	"BreadcrumbList": "30min",
}

// Per-schema impact phrasing used in recommendation reasons.
var impact = map[string]string{
	"Article":        "Eligible for article rich results and better news surfacing",
	"NewsArticle":    "Eligible for Top Stories placement",
	"BlogPosting":    "Clearer author and freshness signals",
	"Product":        "Price, availability and rating shown directly in results",
	"LocalBusiness":  "Knowledge panel and map pack eligibility",
	"Recipe":         "Recipe cards with image, rating and cook time",
	"Event":          "Event snippets with date and venue",
	"FAQPage":        "Expandable Q&A shown under the result",
	"HowTo":          "Step-by-step rich results",
	"Review":         "Star ratings in search results",
	"JobPosting":     "Inclusion in job search experiences",
	"Course":         "Course carousels and listings",
	"Organization":   "Brand knowledge panel data",
	"Person":         "Author entity recognition",
	"BreadcrumbList": "Readable breadcrumb trail in the result URL line",
}

func difficultyFor(schema string) string {
	if d, ok := difficulty[schema]; ok {
		return d
	}
	return "medium"
}

func seoValueFor(schema string) int {
	if v, ok := seoValue[schema]; ok {
		return v
	}
	return 50
}

func timeFor(schema string) string {
	if t, ok := implementationTime[schema]; ok {
		return t
	}
	return "1h"
}

func impactFor(schema string) string {
	if s, ok := impact[schema]; ok {
		return s
	}
	return "Improved machine readability of the page"
}
