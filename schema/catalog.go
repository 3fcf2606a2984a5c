// Package schema holds the static structured-data catalog: JSON-LD
// templates with {{placeholder}} tokens, required/optional field lists and
// implementation guides per schema.org type, plus extraction of the
// structured data already present on a page.
package schema

// Template is a JSON-LD object literal whose string leaves may contain
// {{placeholder}} tokens. Catalog templates are shared, immutable data;
// Fill copies before substituting.
type Template map[string]interface{}

// templates is the built-in catalog. Keys are schema.org type names, not
// classifier page types.
var templates = map[string]Template{
	"Article": {
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    "{{headline}}",
		"description": "{{description}}",
		"image":       "{{image}}",
		"author": map[string]interface{}{
			"@type": "Person",
			"name":  "{{author}}",
		},
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  "{{publisher}}",
			"logo": map[string]interface{}{
				"@type": "ImageObject",
				"url":   "{{publisherLogo}}",
			},
		},
		"datePublished":    "{{datePublished}}",
		"dateModified":     "{{dateModified}}",
		"mainEntityOfPage": "{{url}}",
		"inLanguage":       "{{inLanguage}}",
	},
	"NewsArticle": {
		"@context":    "https://schema.org",
		"@type":       "NewsArticle",
		"headline":    "{{headline}}",
		"description": "{{description}}",
		"image":       "{{image}}",
		"author": map[string]interface{}{
			"@type": "Person",
			"name":  "{{author}}",
		},
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  "{{publisher}}",
		},
		"datePublished": "{{datePublished}}",
		"dateModified":  "{{dateModified}}",
	},
	"BlogPosting": {
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    "{{headline}}",
		"description": "{{description}}",
		"image":       "{{image}}",
		"author": map[string]interface{}{
			"@type": "Person",
			"name":  "{{author}}",
		},
		"datePublished": "{{datePublished}}",
		"inLanguage":    "{{inLanguage}}",
	},
	"Product": {
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        "{{name}}",
		"description": "{{description}}",
		"image":       "{{image}}",
		"brand": map[string]interface{}{
			"@type": "Brand",
			"name":  "{{brand}}",
		},
		"offers": map[string]interface{}{
			"@type":         "Offer",
			"price":         "{{price}}",
			"priceCurrency": "{{priceCurrency}}",
			"availability":  "https://schema.org/{{availability}}",
			"url":           "{{url}}",
		},
		"aggregateRating": map[string]interface{}{
			"@type":       "AggregateRating",
			"ratingValue": "{{ratingValue}}",
			"reviewCount": "{{reviewCount}}",
		},
	},
	"LocalBusiness": {
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"name":        "{{name}}",
		"description": "{{description}}",
		"image":       "{{image}}",
		"url":         "{{url}}",
		"telephone":   "{{telephone}}",
		"address": map[string]interface{}{
			"@type":         "PostalAddress",
			"streetAddress": "{{streetAddress}}",
		},
		"openingHours": "{{openingHours}}",
		"geo": map[string]interface{}{
			"@type":     "GeoCoordinates",
			"latitude":  "{{latitude}}",
			"longitude": "{{longitude}}",
		},
	},
	"Recipe": {
		"@context":    "https://schema.org",
		"@type":       "Recipe",
		"name":        "{{name}}",
		"description": "{{description}}",
		"image":       "{{image}}",
		"author": map[string]interface{}{
			"@type": "Person",
			"name":  "{{author}}",
		},
		"totalTime":   "{{totalTime}}",
		"recipeYield": "{{recipeYield}}",
		"recipeIngredient": []interface{}{
			"{{recipeIngredient}}",
		},
		"recipeInstructions": []interface{}{
			map[string]interface{}{
				"@type": "HowToStep",
				"text":  "{{recipeInstructions}}",
			},
		},
	},
	"Event": {
		"@context":    "https://schema.org",
		"@type":       "Event",
		"name":        "{{name}}",
		"description": "{{description}}",
		"image":       "{{image}}",
		"startDate":   "{{startDate}}",
		"endDate":     "{{endDate}}",
		"location": map[string]interface{}{
			"@type": "Place",
			"name":  "{{locationName}}",
			"address": map[string]interface{}{
				"@type":         "PostalAddress",
				"streetAddress": "{{locationAddress}}",
			},
		},
		"offers": map[string]interface{}{
			"@type":         "Offer",
			"price":         "{{price}}",
			"priceCurrency": "{{priceCurrency}}",
			"url":           "{{url}}",
		},
	},
	"FAQPage": {
		"@context": "https://schema.org",
		"@type":    "FAQPage",
		"mainEntity": []interface{}{
			map[string]interface{}{
				"@type": "Question",
				"name":  "{{question}}",
				"acceptedAnswer": map[string]interface{}{
					"@type": "Answer",
					"text":  "{{answer}}",
				},
			},
		},
	},
	"HowTo": {
		"@context":    "https://schema.org",
		"@type":       "HowTo",
		"name":        "{{name}}",
		"description": "{{description}}",
		"totalTime":   "{{totalTime}}",
		"step": []interface{}{
			map[string]interface{}{
				"@type": "HowToStep",
				"name":  "{{stepName}}",
				"text":  "{{stepText}}",
			},
		},
	},
	"Review": {
		"@context": "https://schema.org",
		"@type":    "Review",
		"itemReviewed": map[string]interface{}{
			"@type": "Thing",
			"name":  "{{itemName}}",
		},
		"reviewRating": map[string]interface{}{
			"@type":       "Rating",
			"ratingValue": "{{ratingValue}}",
			"bestRating":  "5",
		},
		"author": map[string]interface{}{
			"@type": "Person",
			"name":  "{{author}}",
		},
		"reviewBody": "{{reviewBody}}",
	},
	"JobPosting": {
		"@context":    "https://schema.org",
		"@type":       "JobPosting",
		"title":       "{{title}}",
		"description": "{{description}}",
		"hiringOrganization": map[string]interface{}{
			"@type": "Organization",
			"name":  "{{hiringOrganization}}",
		},
		"datePosted":     "{{datePosted}}",
		"employmentType": "{{employmentType}}",
		"jobLocation": map[string]interface{}{
			"@type": "Place",
			"address": map[string]interface{}{
				"@type":           "PostalAddress",
				"addressLocality": "{{jobLocation}}",
			},
		},
		"baseSalary": map[string]interface{}{
			"@type":    "MonetaryAmount",
			"currency": "{{salaryCurrency}}",
			"value":    "{{salary}}",
		},
	},
	"Course": {
		"@context":    "https://schema.org",
		"@type":       "Course",
		"name":        "{{name}}",
		"description": "{{description}}",
		"provider": map[string]interface{}{
			"@type": "Organization",
			"name":  "{{provider}}",
		},
		"url": "{{url}}",
	},
	"Organization": {
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     "{{name}}",
		"url":      "{{url}}",
		"logo":     "{{logo}}",
		"contactPoint": map[string]interface{}{
			"@type":       "ContactPoint",
			"telephone":   "{{telephone}}",
			"contactType": "customer service",
		},
	},
	"Person": {
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     "{{name}}",
		"url":      "{{url}}",
		"jobTitle": "{{jobTitle}}",
		"image":    "{{image}}",
	},
	"BreadcrumbList": {
		"@context": "https://schema.org",
		"@type":    "BreadcrumbList",
		"itemListElement": []interface{}{
			map[string]interface{}{
				"@type":    "ListItem",
				"position": 1,
				"name":     "{{breadcrumbName}}",
				"item":     "{{breadcrumbURL}}",
			},
		},
	},
}

var requiredFields = map[string][]string{
	"Article":        {"headline", "author", "datePublished"},
	"NewsArticle":    {"headline", "author", "datePublished", "publisher"},
	"BlogPosting":    {"headline", "author", "datePublished"},
	"Product":        {"name", "image", "offers"},
	"LocalBusiness":  {"name", "address", "telephone"},
	"Recipe":         {"name", "image", "recipeIngredient", "recipeInstructions"},
	"Event":          {"name", "startDate", "location"},
	"FAQPage":        {"mainEntity"},
	"HowTo":          {"name", "step"},
	"Review":         {"itemReviewed", "reviewRating", "author"},
	"JobPosting":     {"title", "hiringOrganization", "datePosted", "jobLocation"},
	"Course":         {"name", "description", "provider"},
	"Organization":   {"name", "url"},
	"Person":         {"name"},
	"BreadcrumbList": {"itemListElement"},
}

var optionalFields = map[string][]string{
	"Article":        {"image", "dateModified", "publisher", "description", "inLanguage"},
	"NewsArticle":    {"image", "dateModified", "description"},
	"BlogPosting":    {"image", "description", "inLanguage"},
	"Product":        {"brand", "aggregateRating", "description", "sku"},
	"LocalBusiness":  {"openingHours", "geo", "image", "priceRange", "url"},
	"Recipe":         {"author", "totalTime", "recipeYield", "nutrition", "aggregateRating"},
	"Event":          {"endDate", "offers", "image", "performer", "description"},
	"FAQPage":        {},
	"HowTo":          {"totalTime", "image", "supply", "tool"},
	"Review":         {"reviewBody", "datePublished"},
	"JobPosting":     {"baseSalary", "employmentType", "validThrough"},
	"Course":         {"url", "courseCode", "hasCourseInstance"},
	"Organization":   {"logo", "contactPoint", "sameAs"},
	"Person":         {"url", "jobTitle", "image", "sameAs"},
	"BreadcrumbList": {},
}

var implementationGuides = map[string][]string{
	"Article": {
		"Fill headline with the page title (max 110 characters).",
		"Use ISO 8601 dates for datePublished and dateModified.",
		"Embed the JSON-LD in a <script type=\"application/ld+json\"> tag inside <head>.",
		"Validate with Google's Rich Results Test before deploying.",
	},
	"NewsArticle": {
		"Only use NewsArticle for time-sensitive reporting; use Article otherwise.",
		"The publisher logo should be at least 112x112px.",
		"Keep datePublished accurate; search engines compare it to visible dates.",
	},
	"BlogPosting": {
		"Use BlogPosting instead of Article for personal or company blog entries.",
		"Link the author name to an author profile page where possible.",
	},
	"Product": {
		"Price must match the visible price exactly, without currency symbols.",
		"availability uses schema.org values such as InStock or OutOfStock.",
		"Add aggregateRating only when real reviews exist on the page.",
	},
	"LocalBusiness": {
		"Use the most specific subtype (Restaurant, Store, ...) when one applies.",
		"Keep name, address and phone identical to your Google Business Profile.",
		"openingHours uses the format \"Mo-Fr 09:00-18:00\".",
	},
	"Recipe": {
		"List each ingredient as a separate recipeIngredient entry.",
		"Use HowToStep objects for recipeInstructions, one per step.",
		"Durations such as totalTime use ISO 8601 (PT30M for 30 minutes).",
	},
	"Event": {
		"startDate must include a timezone offset.",
		"Set location to a Place with a postal address, not just a name.",
		"Remove the markup after the event ends to avoid stale rich results.",
	},
	"FAQPage": {
		"Each visible Q&A pair becomes one Question with one acceptedAnswer.",
		"The answer text must appear on the page; do not add hidden answers.",
		"Do not mark up forum-style pages where users submit answers.",
	},
	"HowTo": {
		"One HowToStep per visible step, in order.",
		"Add images to steps where the page shows them.",
	},
	"Review": {
		"ratingValue must match the visible rating.",
		"The author must be a real person or organization, not the site itself.",
	},
	"JobPosting": {
		"Remove or set validThrough when the listing closes.",
		"jobLocation needs at least addressLocality; remote jobs use jobLocationType.",
		"Salary information markedly improves listing performance when present.",
	},
	"Course": {
		"provider should be the organization actually running the course.",
		"Add hasCourseInstance entries for scheduled sessions.",
	},
	"Organization": {
		"Place Organization markup on the top page or company profile page only.",
		"sameAs should link official social media profiles.",
	},
	"Person": {
		"Use Person markup on profile or author pages.",
	},
	"BreadcrumbList": {
		"positions start at 1 from the site root.",
		"The last item may omit the item URL.",
	},
}

// GetTemplate returns the template for a schema type, or nil when the type
// is unknown. Callers fall back to GenericTemplate rather than failing.
func GetTemplate(schemaType string) Template {
	if tpl, ok := templates[schemaType]; ok {
		return tpl
	}
	return nil
}

// GenericTemplate is the two-field fallback used when a requested schema
// type is not in the catalog.
func GenericTemplate(schemaType string) Template {
	return Template{
		"@context":    "https://schema.org",
		"@type":       schemaType,
		"name":        "{{name}}",
		"description": "{{description}}",
	}
}

// GetRequiredFields returns the required property names for a schema type.
func GetRequiredFields(schemaType string) []string {
	return requiredFields[schemaType]
}

// GetOptionalFields returns the recommended-but-optional property names.
func GetOptionalFields(schemaType string) []string {
	return optionalFields[schemaType]
}

// GetImplementationGuide returns human-readable implementation steps.
func GetImplementationGuide(schemaType string) []string {
	return implementationGuides[schemaType]
}

// Types returns every schema type in the catalog.
func Types() []string {
	out := make([]string, 0, len(templates))
	for name := range templates {
		out = append(out, name)
	}
	return out
}
