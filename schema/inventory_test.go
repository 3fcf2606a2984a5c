package schema

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return doc
}

func TestExtractInventoryJSONLD(t *testing.T) {
	html := `<html><head>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"Article","headline":"Hello"}</script>
</head><body></body></html>`

	inv := ExtractInventory(mustDoc(t, html))

	if len(inv.JSONLD) != 1 {
		t.Fatalf("Expected 1 JSON-LD block, got %d", len(inv.JSONLD))
	}
	if !inv.JSONLD[0].IsValid {
		t.Error("Expected block to be valid")
	}
	if inv.JSONLD[0].Repaired {
		t.Error("Valid JSON should not be marked repaired")
	}

	names := inv.JSONLDTypeNames()
	if len(names) != 1 || names[0] != "Article" {
		t.Errorf("Expected [Article], got %v", names)
	}
}

func TestExtractInventoryRepairsMalformedJSONLD(t *testing.T) {
	// Trailing comma and unquoted key, the kind of JSON-LD real pages ship.
	html := `<html><head>
<script type="application/ld+json">{"@type": "Product", name: "Widget",}</script>
</head><body></body></html>`

	inv := ExtractInventory(mustDoc(t, html))

	if len(inv.JSONLD) != 1 {
		t.Fatalf("Expected 1 JSON-LD block, got %d", len(inv.JSONLD))
	}
	if !inv.JSONLD[0].IsValid {
		t.Fatal("Expected repaired block to be valid")
	}
	if !inv.JSONLD[0].Repaired {
		t.Error("Expected block to be marked repaired")
	}

	names := inv.JSONLDTypeNames()
	if len(names) != 1 || names[0] != "Product" {
		t.Errorf("Expected [Product], got %v", names)
	}
}

func TestExtractInventoryUnrepairableJSONLD(t *testing.T) {
	html := `<html><head>
<script type="application/ld+json">this is not json at all {{{</script>
</head><body></body></html>`

	inv := ExtractInventory(mustDoc(t, html))

	if len(inv.JSONLD) != 1 {
		t.Fatalf("Expected 1 JSON-LD block, got %d", len(inv.JSONLD))
	}
	if names := inv.JSONLDTypeNames(); len(names) != 0 {
		t.Errorf("Broken blocks must not contribute type names, got %v", names)
	}
}

func TestJSONLDTypeNamesForms(t *testing.T) {
	html := `<html><head>
<script type="application/ld+json">{"@type":["Restaurant","LocalBusiness"]}</script>
<script type="application/ld+json">{"@graph":[{"@type":"Organization"},{"@type":"WebSite"}]}</script>
<script type="application/ld+json">[{"@type":"BreadcrumbList"},{"@type":"Organization"}]</script>
</head><body></body></html>`

	inv := ExtractInventory(mustDoc(t, html))
	names := inv.JSONLDTypeNames()

	want := []string{"Restaurant", "LocalBusiness", "Organization", "WebSite", "BreadcrumbList"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d distinct names, got %v", len(want), names)
	}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("Expected names[%d]=%q, got %q", i, w, names[i])
		}
	}
}

func TestExtractInventoryMicrodataAndRDFa(t *testing.T) {
	html := `<html><body>
<div itemscope itemtype="https://schema.org/Recipe"><span itemprop="name">Cake</span></div>
<div typeof="schema:Review">review text</div>
</body></html>`

	inv := ExtractInventory(mustDoc(t, html))

	if len(inv.Microdata) != 1 || inv.Microdata[0].Type != "Recipe" {
		t.Errorf("Expected microdata [Recipe], got %v", inv.Microdata)
	}
	if len(inv.RDFa) != 1 || inv.RDFa[0].Type != "schema:Review" {
		t.Errorf("Expected RDFa [schema:Review], got %v", inv.RDFa)
	}

	// Microdata does not feed the JSON-LD type filter.
	if names := inv.JSONLDTypeNames(); len(names) != 0 {
		t.Errorf("Expected no JSON-LD type names, got %v", names)
	}
}

func TestJSONLDTypeNamesNilInventory(t *testing.T) {
	var inv *Inventory
	if names := inv.JSONLDTypeNames(); names != nil {
		t.Errorf("Expected nil for nil inventory, got %v", names)
	}
}
