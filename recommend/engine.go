// Package recommend turns a page-type classification and the page's
// existing structured-data inventory into a prioritized, phased set of
// schema recommendations with pre-filled JSON-LD snippets.
package recommend

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/schema-advisor/backend/classifier"
	"github.com/schema-advisor/backend/extractor"
	"github.com/schema-advisor/backend/schema"
)

// Engine generates schema recommendations. Stateless; safe for concurrent
// use.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// DefaultOutput is the safe fallback: a single critical Article
// recommendation, so the advisory report always has something actionable.
func DefaultOutput() Output {
	item := Item{
		Schema:     "Article",
		Priority:   PriorityCritical,
		Reason:     "No structured data detected; Article markup is the safe baseline.",
		Impact:     impactFor("Article"),
		Difficulty: difficultyFor("Article"),
		SEOValue:   seoValueFor("Article"),
	}
	return Output{
		Recommendations: Set{Missing: []Item{item}},
		Plan: Plan{
			Immediate: []PlanStep{{
				Schema:        "Article",
				Priority:      PriorityCritical,
				EstimatedTime: timeFor("Article"),
				Guide:         schema.GetImplementationGuide("Article"),
				Snippet:       map[string]interface{}{},
			}},
		},
		Benefits:      computeBenefits(1, 0, []Item{item}),
		ExistingTypes: []string{},
	}
}

// GenerateRecommendations computes the full recommendation output for a
// classified page. It never fails outward: any panic degrades to
// DefaultOutput.
func (e *Engine) GenerateRecommendations(
	cls classifier.ClassificationResult,
	inv *schema.Inventory,
	doc *goquery.Document,
	data classifier.ExtractedPageData,
) (out Output) {
	defer func() {
		if r := recover(); r != nil {
			out = DefaultOutput()
		}
	}()

	t, ok := tierMap[cls.PrimaryType]
	if !ok {
		t = tierMap[classifier.TypeArticle]
	}

	existing := inv.JSONLDTypeNames()
	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	set := Set{
		Missing:      buildItems(filterMissing(t.Primary, existingSet), PriorityCritical, cls.PrimaryType),
		Improvements: buildItems(filterMissing(t.Secondary, existingSet), PriorityHigh, cls.PrimaryType),
		Optional:     buildItems(filterMissing(t.Optional, existingSet), PriorityLow, cls.PrimaryType),
	}

	out = Output{
		Recommendations: set,
		Plan: Plan{
			Immediate: buildPlanSteps(set.Missing, doc, data),
			ShortTerm: buildPlanSteps(set.Improvements, doc, data),
			LongTerm:  buildPlanSteps(set.Optional, doc, data),
		},
		Benefits:      computeBenefits(len(set.Missing), len(set.Improvements), set.Missing),
		ExistingTypes: existing,
	}

	if cls.PrimaryType == classifier.TypeLocalBusiness {
		out.Business = adviseBusiness(data, existingSet)
	}

	return out
}

func filterMissing(tier []string, existing map[string]bool) []string {
	out := make([]string, 0, len(tier))
	for _, name := range tier {
		if !existing[name] {
			out = append(out, name)
		}
	}
	return out
}

func buildItems(schemas []string, priority string, pageType classifier.PageType) []Item {
	items := make([]Item, 0, len(schemas))
	for _, name := range schemas {
		items = append(items, Item{
			Schema:     name,
			Priority:   priority,
			Reason:     reasonFor(name, priority, pageType),
			Impact:     impactFor(name),
			Difficulty: difficultyFor(name),
			SEOValue:   seoValueFor(name),
		})
	}
	return items
}

func reasonFor(schemaName, priority string, pageType classifier.PageType) string {
	switch priority {
	case PriorityCritical:
		return fmt.Sprintf("This page reads as %s content but has no %s markup, the primary schema for it.", pageType, schemaName)
	case PriorityHigh:
		return fmt.Sprintf("%s markup complements the page's main schema and is recommended for %s pages.", schemaName, pageType)
	default:
		return fmt.Sprintf("%s markup is a nice-to-have addition for %s pages.", schemaName, pageType)
	}
}

// buildPlanSteps enriches recommendation items with effort estimates, the
// implementation guide and a snippet pre-filled from the page.
func buildPlanSteps(items []Item, doc *goquery.Document, data classifier.ExtractedPageData) []PlanStep {
	steps := make([]PlanStep, 0, len(items))
	for _, item := range items {
		steps = append(steps, PlanStep{
			Schema:        item.Schema,
			Priority:      item.Priority,
			EstimatedTime: timeFor(item.Schema),
			Guide:         schema.GetImplementationGuide(item.Schema),
			Snippet:       buildSnippet(item.Schema, doc, data),
		})
	}
	return steps
}

// buildSnippet fills the catalog template for a schema with values
// extracted from the page. FAQPage, HowTo and BreadcrumbList get their
// repeated nodes expanded from the actual items found on the page.
func buildSnippet(schemaName string, doc *goquery.Document, data classifier.ExtractedPageData) map[string]interface{} {
	tpl := schema.GetTemplate(schemaName)
	if tpl == nil {
		tpl = schema.GenericTemplate(schemaName)
	}

	values := extractor.Extract(schemaName, doc, data)
	filled := schema.Fill(tpl, values)

	switch schemaName {
	case "FAQPage":
		if items := extractor.FAQItems(doc, data); len(items) > 0 {
			entities := make([]interface{}, 0, len(items))
			for _, item := range items {
				entities = append(entities, map[string]interface{}{
					"@type": "Question",
					"name":  item.Question,
					"acceptedAnswer": map[string]interface{}{
						"@type": "Answer",
						"text":  item.Answer,
					},
				})
			}
			filled["mainEntity"] = entities
		}
	case "HowTo":
		if steps := extractor.HowToSteps(doc, data); len(steps) > 0 {
			nodes := make([]interface{}, 0, len(steps))
			for _, step := range steps {
				nodes = append(nodes, map[string]interface{}{
					"@type": "HowToStep",
					"name":  step.Name,
					"text":  step.Text,
				})
			}
			filled["step"] = nodes
		}
	case "BreadcrumbList":
		if crumbs := extractor.Breadcrumbs(doc, data); len(crumbs) > 0 {
			nodes := make([]interface{}, 0, len(crumbs))
			for i, crumb := range crumbs {
				node := map[string]interface{}{
					"@type":    "ListItem",
					"position": i + 1,
					"name":     crumb.Name,
				}
				if crumb.URL != "" {
					node["item"] = crumb.URL
				}
				nodes = append(nodes, node)
			}
			filled["itemListElement"] = nodes
		}
	}

	return filled
}

// computeBenefits applies the fixed bounded-linear benefit formulas.
func computeBenefits(criticalCount, highCount int, missing []Item) Benefits {
	b := Benefits{
		RichSnippetProbability: boundedLinear(90, 30, 15, criticalCount, highCount),
		RankingImprovement:     boundedLinear(20, 5, 3, criticalCount, highCount),
		CTRImprovement:         boundedLinear(25, 8, 5, criticalCount, highCount),
		LocalSearchVisibility:  10,
	}
	for _, item := range missing {
		if item.Schema == "LocalBusiness" || item.Schema == "Organization" {
			b.LocalSearchVisibility = 40
			break
		}
	}
	return b
}

func boundedLinear(bound, criticalWeight, highWeight, criticalCount, highCount int) int {
	v := criticalWeight*criticalCount + highWeight*highCount
	if v > bound {
		return bound
	}
	return v
}
