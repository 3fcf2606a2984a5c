package analyzer

import (
	"github.com/schema-advisor/backend/classifier"
	"github.com/schema-advisor/backend/recommend"
	"github.com/schema-advisor/backend/schema"
)

// Report is the complete analysis of a webpage: on-page SEO checks, AI
// search readiness, page-type classification and structured-data
// recommendations.
type Report struct {
	URL             string                          `json:"url"`
	OnPage          OnPageAnalysis                  `json:"onPage"`
	AIReadiness     AIReadinessAnalysis             `json:"aiReadiness"`
	Classification  classifier.ClassificationResult `json:"classification"`
	StructuredData  StructuredDataReport            `json:"structuredData"`
	Score           float64                         `json:"score"`
	Recommendations []string                        `json:"recommendations"`
}

// OnPageAnalysis groups the classic rule checks.
type OnPageAnalysis struct {
	Title   TitleAnalysis   `json:"title"`
	Meta    MetaAnalysis    `json:"meta"`
	Headers HeaderAnalysis  `json:"headers"`
	Content ContentAnalysis `json:"content"`
	Links   LinkAnalysis    `json:"links"`
	Score   float64         `json:"score"`
}

type TitleAnalysis struct {
	Title    string `json:"title"`
	Length   int    `json:"length"`
	HasTitle bool   `json:"hasTitle"`
	Score    int    `json:"score"`
}

type MetaAnalysis struct {
	Description    string `json:"description"`
	DescriptionLen int    `json:"descriptionLength"`
	HasDescription bool   `json:"hasDescription"`
	Robots         string `json:"robots"`
	Viewport       string `json:"viewport"`
	Canonical      string `json:"canonical"`
	Score          int    `json:"score"`
}

type HeaderAnalysis struct {
	H1Count int      `json:"h1Count"`
	H2Count int      `json:"h2Count"`
	H3Count int      `json:"h3Count"`
	H1Text  []string `json:"h1Text"`
	Score   int      `json:"score"`
}

type ContentAnalysis struct {
	WordCount     int  `json:"wordCount"`
	HasImages     bool `json:"hasImages"`
	ImagesWithAlt int  `json:"imagesWithAlt"`
	TotalImages   int  `json:"totalImages"`
	Score         int  `json:"score"`
}

type LinkAnalysis struct {
	InternalLinks int `json:"internalLinks"`
	ExternalLinks int `json:"externalLinks"`
	Score         int `json:"score"`
}

// AIReadinessAnalysis scores how well the page serves answer-oriented AI
// search: question-form headings, FAQ blocks, a summarizable lead and
// machine-readable markup.
type AIReadinessAnalysis struct {
	QuestionHeadings     int    `json:"questionHeadings"`
	TotalHeadings        int    `json:"totalHeadings"`
	HasFAQBlock          bool   `json:"hasFaqBlock"`
	HasLeadSummary       bool   `json:"hasLeadSummary"`
	StructuredDataBlocks int    `json:"structuredDataBlocks"`
	Language             string `json:"language"`
	Score                int    `json:"score"`
}

// StructuredDataReport pairs the page's existing markup inventory with the
// generated recommendation output, flattened into the report.
type StructuredDataReport struct {
	Existing *schema.Inventory `json:"existing"`
	recommend.Output
}
