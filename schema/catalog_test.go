package schema

import "testing"

var catalogTypes = []string{
	"Article", "NewsArticle", "BlogPosting", "Product", "LocalBusiness",
	"Recipe", "Event", "FAQPage", "HowTo", "Review", "JobPosting",
	"Course", "Organization", "Person", "BreadcrumbList",
}

func TestCatalogCoversAllTypes(t *testing.T) {
	if len(Types()) != len(catalogTypes) {
		t.Errorf("Expected %d catalog types, got %d: %v", len(catalogTypes), len(Types()), Types())
	}

	for _, schemaType := range catalogTypes {
		tpl := GetTemplate(schemaType)
		if tpl == nil {
			t.Errorf("Missing template for %s", schemaType)
			continue
		}
		if tpl["@context"] != "https://schema.org" {
			t.Errorf("%s: expected schema.org context, got %v", schemaType, tpl["@context"])
		}
		if tpl["@type"] != schemaType {
			t.Errorf("%s: expected matching @type, got %v", schemaType, tpl["@type"])
		}
	}
}

func TestCatalogFieldLists(t *testing.T) {
	for _, schemaType := range catalogTypes {
		if len(GetRequiredFields(schemaType)) == 0 {
			t.Errorf("%s: expected required fields", schemaType)
		}
		if len(GetImplementationGuide(schemaType)) == 0 {
			t.Errorf("%s: expected an implementation guide", schemaType)
		}

		// Required and optional field lists must not overlap.
		required := map[string]bool{}
		for _, f := range GetRequiredFields(schemaType) {
			required[f] = true
		}
		for _, f := range GetOptionalFields(schemaType) {
			if required[f] {
				t.Errorf("%s: field %q listed as both required and optional", schemaType, f)
			}
		}
	}
}

func TestGetTemplateUnknownType(t *testing.T) {
	if tpl := GetTemplate("Spaceship"); tpl != nil {
		t.Errorf("Expected nil for unknown type, got %v", tpl)
	}
}

func TestGenericTemplate(t *testing.T) {
	tpl := GenericTemplate("Spaceship")
	if tpl["@type"] != "Spaceship" {
		t.Errorf("Expected @type Spaceship, got %v", tpl["@type"])
	}

	filled := Fill(tpl, map[string]string{"name": "Falcon"})
	if filled["name"] != "Falcon" {
		t.Errorf("Expected name substitution, got %v", filled["name"])
	}
	if _, exists := filled["description"]; exists {
		t.Errorf("Expected unfilled description to be pruned, got %v", filled["description"])
	}
}
