package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFillSubstitutesValues(t *testing.T) {
	tpl := GetTemplate("Article")
	if tpl == nil {
		t.Fatal("Article template missing from catalog")
	}

	filled := Fill(tpl, map[string]string{
		"headline": "How to brew coffee",
		"author":   "Jane Doe",
	})

	if filled["headline"] != "How to brew coffee" {
		t.Errorf("Expected headline substitution, got %v", filled["headline"])
	}
	if filled["@type"] != "Article" {
		t.Errorf("Expected @type to survive, got %v", filled["@type"])
	}
}

func TestFillLeavesNoPlaceholders(t *testing.T) {
	// Partial value sets must never leak {{...}} tokens into the output.
	for _, schemaType := range Types() {
		tpl := GetTemplate(schemaType)
		filled := Fill(tpl, map[string]string{"headline": "x", "name": "y"})

		raw, err := json.Marshal(filled)
		if err != nil {
			t.Fatalf("%s: marshal failed: %v", schemaType, err)
		}
		if strings.Contains(string(raw), "{{") {
			t.Errorf("%s: unresolved placeholder in output: %s", schemaType, raw)
		}
	}
}

func TestFillPrunesEmptyBranches(t *testing.T) {
	tpl := Template{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": "{{headline}}",
		"author": map[string]interface{}{
			"@type": "Person",
			"name":  "{{author}}",
		},
	}

	filled := Fill(tpl, map[string]string{"headline": "Title"})

	if _, exists := filled["author"]; exists {
		t.Errorf("Expected empty author branch to be pruned, got %v", filled["author"])
	}
	if filled["headline"] != "Title" {
		t.Errorf("Expected headline to survive, got %v", filled["headline"])
	}
}

func TestFillEmptyValuesKeepsStaticFields(t *testing.T) {
	filled := Fill(GetTemplate("Article"), nil)

	if filled["@context"] != "https://schema.org" {
		t.Errorf("Expected @context to survive an empty fill, got %v", filled["@context"])
	}
}

func TestFillNilTemplate(t *testing.T) {
	filled := Fill(nil, map[string]string{"name": "x"})
	if len(filled) != 0 {
		t.Errorf("Expected empty result for nil template, got %v", filled)
	}
}

func TestFillDoesNotModifyTemplate(t *testing.T) {
	tpl := GetTemplate("Product")
	before, _ := json.Marshal(map[string]interface{}(tpl))

	Fill(tpl, map[string]string{"name": "Widget", "price": "9.99"})

	after, _ := json.Marshal(map[string]interface{}(tpl))
	if string(before) != string(after) {
		t.Error("Fill modified the catalog template in place")
	}
}

func TestPlaceholders(t *testing.T) {
	tpl := Template{
		"a": "{{one}}",
		"b": map[string]interface{}{"c": "{{two}} and {{one}}"},
		"d": []interface{}{map[string]interface{}{"e": "{{three}}"}},
	}

	names := Placeholders(tpl)
	if len(names) != 3 {
		t.Errorf("Expected 3 distinct placeholders, got %v", names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"one", "two", "three"} {
		if !seen[want] {
			t.Errorf("Expected placeholder %q in %v", want, names)
		}
	}
}
