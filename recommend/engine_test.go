package recommend

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/schema-advisor/backend/classifier"
	"github.com/schema-advisor/backend/schema"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return doc
}

func classified(pt classifier.PageType) classifier.ClassificationResult {
	return classifier.ClassificationResult{PrimaryType: pt, Confidence: 20}
}

func inventoryOf(t *testing.T, jsonld string) *schema.Inventory {
	t.Helper()
	html := `<html><head><script type="application/ld+json">` + jsonld + `</script></head><body></body></html>`
	return schema.ExtractInventory(mustDoc(t, html))
}

func TestTierListsDisjoint(t *testing.T) {
	for pageType, tier := range tierMap {
		seen := map[string]string{}
		check := func(list []string, label string) {
			for _, name := range list {
				if prev, dup := seen[name]; dup {
					t.Errorf("%s: schema %q in both %s and %s tiers", pageType, name, prev, label)
				}
				seen[name] = label
			}
		}
		check(tier.Primary, "primary")
		check(tier.Secondary, "secondary")
		check(tier.Optional, "optional")

		if len(tier.Primary) == 0 {
			t.Errorf("%s: empty primary tier", pageType)
		}
	}
}

func TestGenerateRecommendationsForEmptyPage(t *testing.T) {
	doc := mustDoc(t, "<html><body></body></html>")
	data := classifier.ExtractedPageData{URL: "https://example.com/product/x"}

	e := New()
	out := e.GenerateRecommendations(classified(classifier.TypeProduct), schema.ExtractInventory(doc), doc, data)

	if len(out.Recommendations.Missing) != 1 || out.Recommendations.Missing[0].Schema != "Product" {
		t.Fatalf("Expected Product as the single critical item, got %v", out.Recommendations.Missing)
	}
	if out.Recommendations.Missing[0].Priority != PriorityCritical {
		t.Errorf("Expected critical priority, got %q", out.Recommendations.Missing[0].Priority)
	}
	if len(out.Recommendations.Improvements) != 2 {
		t.Errorf("Expected 2 improvements, got %v", out.Recommendations.Improvements)
	}
	if len(out.Plan.Immediate) != 1 {
		t.Errorf("Expected 1 immediate plan step, got %d", len(out.Plan.Immediate))
	}
	if out.Plan.Immediate[0].Snippet["@type"] != "Product" {
		t.Errorf("Expected Product snippet, got %v", out.Plan.Immediate[0].Snippet)
	}
}

func TestExistingMarkupNeverRecommended(t *testing.T) {
	inv := inventoryOf(t, `{"@type":"Product","name":"Widget"}`)
	doc := mustDoc(t, "<html><body></body></html>")
	data := classifier.ExtractedPageData{URL: "https://example.com/product/x"}

	e := New()
	out := e.GenerateRecommendations(classified(classifier.TypeProduct), inv, doc, data)

	existing := map[string]bool{}
	for _, name := range out.ExistingTypes {
		existing[name] = true
	}
	if !existing["Product"] {
		t.Fatalf("Expected Product in existing types, got %v", out.ExistingTypes)
	}

	for _, item := range out.Recommendations.Missing {
		if existing[item.Schema] {
			t.Errorf("Existing schema %q recommended as missing", item.Schema)
		}
	}
	if len(out.Recommendations.Missing) != 0 {
		t.Errorf("Expected no missing items when primary schema exists, got %v", out.Recommendations.Missing)
	}
}

func TestExistingSecondaryFiltered(t *testing.T) {
	inv := inventoryOf(t, `{"@graph":[{"@type":"Organization"},{"@type":"BreadcrumbList"}]}`)
	doc := mustDoc(t, "<html><body></body></html>")
	data := classifier.ExtractedPageData{URL: "https://example.com/access"}

	e := New()
	out := e.GenerateRecommendations(classified(classifier.TypeLocalBusiness), inv, doc, data)

	if len(out.Recommendations.Improvements) != 0 {
		t.Errorf("Expected all secondary schemas filtered, got %v", out.Recommendations.Improvements)
	}
	if len(out.Recommendations.Missing) != 1 || out.Recommendations.Missing[0].Schema != "LocalBusiness" {
		t.Errorf("Expected LocalBusiness still missing, got %v", out.Recommendations.Missing)
	}
}

func TestBenefitCoefficients(t *testing.T) {
	b := computeBenefits(1, 2, nil)
	if b.RichSnippetProbability != 60 {
		t.Errorf("RichSnippetProbability = %d, want 60", b.RichSnippetProbability)
	}
	if b.RankingImprovement != 11 {
		t.Errorf("RankingImprovement = %d, want 11", b.RankingImprovement)
	}
	if b.CTRImprovement != 18 {
		t.Errorf("CTRImprovement = %d, want 18", b.CTRImprovement)
	}
	if b.LocalSearchVisibility != 10 {
		t.Errorf("LocalSearchVisibility = %d, want 10", b.LocalSearchVisibility)
	}

	// Bounds clamp.
	b = computeBenefits(10, 10, nil)
	if b.RichSnippetProbability != 90 {
		t.Errorf("RichSnippetProbability = %d, want clamped 90", b.RichSnippetProbability)
	}
	if b.RankingImprovement != 20 {
		t.Errorf("RankingImprovement = %d, want clamped 20", b.RankingImprovement)
	}
	if b.CTRImprovement != 25 {
		t.Errorf("CTRImprovement = %d, want clamped 25", b.CTRImprovement)
	}

	// Local visibility rises when local schemas are missing.
	b = computeBenefits(1, 0, []Item{{Schema: "LocalBusiness"}})
	if b.LocalSearchVisibility != 40 {
		t.Errorf("LocalSearchVisibility = %d, want 40", b.LocalSearchVisibility)
	}
}

func TestBusinessSubtypeAdvice(t *testing.T) {
	html := `<html><head><title>カフェ山田</title></head><body>
<p>営業時間: 10:00〜20:00</p>
<p>〒100-0001 東京都千代田区1-1</p>
</body></html>`
	doc := mustDoc(t, html)
	data := classifier.ExtractPageData(doc, "https://example.com/access")

	e := New()
	out := e.GenerateRecommendations(classified(classifier.TypeLocalBusiness), schema.ExtractInventory(doc), doc, data)

	if out.Business == nil {
		t.Fatal("Expected business advice for a LocalBusiness page")
	}
	if out.Business.SuggestedSubtype != "Restaurant" {
		t.Errorf("Expected Restaurant subtype for a cafe page, got %q", out.Business.SuggestedSubtype)
	}
	if !out.Business.AddOpeningHours {
		t.Error("Expected opening-hours advice when the page lists hours")
	}
	if !out.Business.AddGeo {
		t.Error("Expected geo advice when the page shows an address")
	}
}

func TestBusinessAdviceSkipsExistingSubtype(t *testing.T) {
	existing := map[string]bool{"Restaurant": true}
	data := classifier.ExtractedPageData{Title: "カフェ山田", BodyText: "ランチメニュー"}

	advice := adviseBusiness(data, existing)
	if advice != nil && advice.SuggestedSubtype == "Restaurant" {
		t.Errorf("Should not re-suggest an existing subtype, got %+v", advice)
	}
}

func TestBusinessAdviceOnlyForLocalBusiness(t *testing.T) {
	doc := mustDoc(t, "<html><body><p>営業時間: 10:00〜20:00</p></body></html>")
	data := classifier.ExtractPageData(doc, "https://example.com/blog/post")

	e := New()
	out := e.GenerateRecommendations(classified(classifier.TypeArticle), schema.ExtractInventory(doc), doc, data)

	if out.Business != nil {
		t.Errorf("Expected no business advice for an article page, got %+v", out.Business)
	}
}

func TestUnknownPageTypeFallsBackToArticle(t *testing.T) {
	doc := mustDoc(t, "<html><body></body></html>")
	data := classifier.ExtractedPageData{URL: "https://example.com/"}

	e := New()
	out := e.GenerateRecommendations(classified(classifier.PageType("mystery")), schema.ExtractInventory(doc), doc, data)

	if len(out.Recommendations.Missing) != 1 || out.Recommendations.Missing[0].Schema != "Article" {
		t.Errorf("Expected Article fallback, got %v", out.Recommendations.Missing)
	}
}

func TestDefaultOutput(t *testing.T) {
	out := DefaultOutput()
	if len(out.Recommendations.Missing) != 1 || out.Recommendations.Missing[0].Schema != "Article" {
		t.Errorf("Expected single critical Article item, got %v", out.Recommendations.Missing)
	}
	if out.Recommendations.Missing[0].Priority != PriorityCritical {
		t.Errorf("Expected critical priority, got %q", out.Recommendations.Missing[0].Priority)
	}
}

func TestFAQSnippetExpandsAllPairs(t *testing.T) {
	html := `<html><body>
<p>Q: 返品はできますか</p>
<p>A: 7日以内なら可能です</p>
<p>Q: 送料はかかりますか</p>
<p>A: 5000円以上で無料です</p>
</body></html>`
	doc := mustDoc(t, html)
	data := classifier.ExtractPageData(doc, "https://example.com/faq")

	snippet := buildSnippet("FAQPage", doc, data)

	entities, ok := snippet["mainEntity"].([]interface{})
	if !ok {
		t.Fatalf("Expected expanded mainEntity array, got %T", snippet["mainEntity"])
	}
	if len(entities) != 2 {
		t.Fatalf("Expected 2 question nodes, got %d", len(entities))
	}
	first, ok := entities[0].(map[string]interface{})
	if !ok || first["@type"] != "Question" {
		t.Errorf("Unexpected first entity: %v", entities[0])
	}
}

func TestBreadcrumbSnippetPositions(t *testing.T) {
	doc := mustDoc(t, "<html><body></body></html>")
	data := classifier.ExtractedPageData{URL: "https://example.com/blog/2026/post"}

	snippet := buildSnippet("BreadcrumbList", doc, data)

	nodes, ok := snippet["itemListElement"].([]interface{})
	if !ok {
		t.Fatalf("Expected expanded itemListElement array, got %T", snippet["itemListElement"])
	}
	if len(nodes) != 3 {
		t.Fatalf("Expected 3 list items, got %d", len(nodes))
	}
	for i, raw := range nodes {
		node := raw.(map[string]interface{})
		if node["position"] != i+1 {
			t.Errorf("Expected position %d, got %v", i+1, node["position"])
		}
	}
}
