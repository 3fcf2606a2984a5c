package schema

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kaptinlin/jsonrepair"
)

// JSONLDBlock is one <script type="application/ld+json"> found on the page.
// Data is nil when the block could not be parsed even after repair.
type JSONLDBlock struct {
	Data     interface{} `json:"data"`
	IsValid  bool        `json:"isValid"`
	Repaired bool        `json:"repaired"`
	Position int         `json:"position"`
}

// MarkupItem is one microdata or RDFa typed node.
type MarkupItem struct {
	Type     string `json:"type"`
	Position int    `json:"position"`
}

// Inventory is the structured data already present on a page. It is used as
// a negative filter against recommendations: schemas listed here are never
// recommended again.
type Inventory struct {
	JSONLD    []JSONLDBlock `json:"jsonLd"`
	Microdata []MarkupItem  `json:"microdata"`
	RDFa      []MarkupItem  `json:"rdfa"`
}

// ExtractInventory collects all structured-data markup from a document.
func ExtractInventory(doc *goquery.Document) *Inventory {
	inv := &Inventory{}
	if doc == nil {
		return inv
	}

	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, s *goquery.Selection) {
		block := JSONLDBlock{Position: i}
		raw := strings.TrimSpace(s.Text())

		var data interface{}
		if err := json.Unmarshal([]byte(raw), &data); err == nil {
			block.Data = data
			block.IsValid = true
		} else if repaired, rerr := jsonrepair.JSONRepair(raw); rerr == nil {
			// Real pages ship JSON-LD with trailing commas, comments and
			// unquoted keys; try a repair pass before declaring it broken.
			if err := json.Unmarshal([]byte(repaired), &data); err == nil {
				block.Data = data
				block.IsValid = true
				block.Repaired = true
			}
		}

		inv.JSONLD = append(inv.JSONLD, block)
	})

	doc.Find("[itemscope][itemtype]").Each(func(i int, s *goquery.Selection) {
		itemType, _ := s.Attr("itemtype")
		if name := lastPathSegment(itemType); name != "" {
			inv.Microdata = append(inv.Microdata, MarkupItem{Type: name, Position: i})
		}
	})

	doc.Find("[typeof]").Each(func(i int, s *goquery.Selection) {
		typeName, _ := s.Attr("typeof")
		if typeName = strings.TrimSpace(typeName); typeName != "" {
			inv.RDFa = append(inv.RDFa, MarkupItem{Type: typeName, Position: i})
		}
	})

	return inv
}

// JSONLDTypeNames returns every @type value declared by the page's JSON-LD
// blocks, handling scalar and array forms, top-level arrays and @graph
// containers.
func (inv *Inventory) JSONLDTypeNames() []string {
	if inv == nil {
		return nil
	}
	seen := map[string]bool{}
	var names []string
	for _, block := range inv.JSONLD {
		if !block.IsValid {
			continue
		}
		collectTypeNames(block.Data, seen, &names)
	}
	return names
}

func collectTypeNames(data interface{}, seen map[string]bool, names *[]string) {
	switch val := data.(type) {
	case map[string]interface{}:
		switch t := val["@type"].(type) {
		case string:
			addTypeName(t, seen, names)
		case []interface{}:
			for _, entry := range t {
				if s, ok := entry.(string); ok {
					addTypeName(s, seen, names)
				}
			}
		}
		if graph, ok := val["@graph"].([]interface{}); ok {
			for _, node := range graph {
				collectTypeNames(node, seen, names)
			}
		}
	case []interface{}:
		for _, node := range val {
			collectTypeNames(node, seen, names)
		}
	}
}

func addTypeName(name string, seen map[string]bool, names *[]string) {
	name = strings.TrimSpace(name)
	if name == "" || seen[name] {
		return
	}
	seen[name] = true
	*names = append(*names, name)
}

func lastPathSegment(u string) string {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	if idx := strings.LastIndex(u, "/"); idx >= 0 {
		return u[idx+1:]
	}
	return u
}
