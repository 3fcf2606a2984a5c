package classifier

import (
	"reflect"
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

func TestClassifyRecipePage(t *testing.T) {
	html := `<html><head><title>鶏肉の煮込みレシピ</title>
<meta name="description" content="簡単な鶏肉料理のレシピです"></head><body>
<h1>鶏肉の煮込みの作り方</h1>
<p>材料: 鶏肉300g、玉ねぎ1個</p>
<p>手順1: 鍋に油を入れる</p>
<p>調理時間: 30分</p>
</body></html>`

	doc := mustDoc(t, html)
	c := New()
	result := c.AnalyzePage(doc, "https://example.com/recipe/chicken-stew")

	if result.PrimaryType != TypeRecipe {
		t.Errorf("Expected primary type %q, got %q (scores: %v)", TypeRecipe, result.PrimaryType, result.AllScores)
	}
	if result.Confidence <= 0 {
		t.Errorf("Expected positive confidence, got %f", result.Confidence)
	}
	if result.AllScores[TypeRecipe] <= result.AllScores[TypeArticle] {
		t.Errorf("Expected recipe score above article score, got %f vs %f",
			result.AllScores[TypeRecipe], result.AllScores[TypeArticle])
	}
}

func TestClassifyFAQPage(t *testing.T) {
	html := `<html><head><title>よくある質問</title></head><body>
<h1>よくある質問</h1>
<p>Q: 返品はできますか</p>
<p>A: はい、商品到着後7日以内であれば可能です</p>
<p>Q: 送料はかかりますか</p>
<p>A: 5000円以上のご注文で無料です</p>
</body></html>`

	doc := mustDoc(t, html)
	c := New()
	result := c.AnalyzePage(doc, "https://example.com/faq/general")

	if result.PrimaryType != TypeFAQ {
		t.Errorf("Expected primary type %q, got %q (scores: %v)", TypeFAQ, result.PrimaryType, result.AllScores)
	}
	found := false
	for _, hit := range result.MatchedPatterns[TypeFAQ] {
		if hit == "url:/faq" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected url:/faq in matched patterns, got %v", result.MatchedPatterns[TypeFAQ])
	}
}

func TestClassifyProductPageWithPrice(t *testing.T) {
	html := `<html><head><title>ワイヤレスイヤホン 通販</title></head><body>
<h1>ワイヤレスイヤホン</h1>
<p class="price">¥12,800</p>
<p>カートに入れる</p>
<p>在庫あり、送料無料</p>
</body></html>`

	doc := mustDoc(t, html)
	c := New()
	result := c.AnalyzePage(doc, "https://example.com/product/earphones")

	if result.PrimaryType != TypeProduct {
		t.Errorf("Expected primary type %q, got %q (scores: %v)", TypeProduct, result.PrimaryType, result.AllScores)
	}
	foundBonus := false
	for _, hit := range result.MatchedPatterns[TypeProduct] {
		if hit == "special:price" {
			foundBonus = true
		}
	}
	if !foundBonus {
		t.Errorf("Expected special:price in matched patterns, got %v", result.MatchedPatterns[TypeProduct])
	}
}

func TestClassifyEmptyDocument(t *testing.T) {
	doc := mustDoc(t, "<html><head></head><body></body></html>")
	c := New()
	result := c.AnalyzePage(doc, "")

	if result.PrimaryType != TypeArticle {
		t.Errorf("Expected fallback to %q, got %q", TypeArticle, result.PrimaryType)
	}
	if result.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %f", result.Confidence)
	}
	if len(result.SecondaryTypes) != 0 {
		t.Errorf("Expected no secondary types, got %v", result.SecondaryTypes)
	}
}

func TestClassifyNilDocument(t *testing.T) {
	c := New()
	result := c.AnalyzePage(nil, "https://example.com/")

	if result.PrimaryType != TypeArticle {
		t.Errorf("Expected fallback to %q, got %q", TypeArticle, result.PrimaryType)
	}
	if result.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %f", result.Confidence)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	data := ExtractedPageData{
		Title:    "商品レビューと口コミ",
		URL:      "https://example.com/review/item",
		BodyText: "星5点満点で評価しました。メリットとデメリットを紹介します。",
	}

	c := New()
	first := c.Classify(data)
	for i := 0; i < 10; i++ {
		next := c.Classify(data)
		if next.PrimaryType != first.PrimaryType {
			t.Fatalf("Primary type changed between runs: %q vs %q", first.PrimaryType, next.PrimaryType)
		}
		if !reflect.DeepEqual(next.SecondaryTypes, first.SecondaryTypes) {
			t.Fatalf("Secondary types changed between runs: %v vs %v", first.SecondaryTypes, next.SecondaryTypes)
		}
		if next.Confidence != first.Confidence {
			t.Fatalf("Confidence changed between runs: %f vs %f", first.Confidence, next.Confidence)
		}
	}
}

func TestSecondaryTypesLimit(t *testing.T) {
	data := ExtractedPageData{
		Title:    "レシピ記事のレビューと講座イベント求人",
		URL:      "https://example.com/blog/everything",
		BodyText: "材料と作り方を紹介する記事です。レビューも講座も求人もイベントもあります。",
	}

	c := New()
	result := c.Classify(data)

	if len(result.SecondaryTypes) > 2 {
		t.Errorf("Expected at most 2 secondary types, got %d: %v", len(result.SecondaryTypes), result.SecondaryTypes)
	}
	for _, sec := range result.SecondaryTypes {
		if result.AllScores[sec] <= 0 {
			t.Errorf("Secondary type %q has non-positive score %f", sec, result.AllScores[sec])
		}
		if sec == result.PrimaryType {
			t.Errorf("Secondary types must not repeat the primary type %q", sec)
		}
	}
}

func TestTitleKeywordOutweighsContent(t *testing.T) {
	// One keyword occurrence in the title is worth three in the body.
	titleOnly := ExtractedPageData{Title: "recipe"}
	contentOnly := ExtractedPageData{BodyText: "recipe recipe"}

	c := New()
	titleScore := c.Classify(titleOnly).AllScores[TypeRecipe]
	contentScore := c.Classify(contentOnly).AllScores[TypeRecipe]

	if titleScore <= contentScore {
		t.Errorf("Expected title hit (%f) to outweigh two content hits (%f)", titleScore, contentScore)
	}
}

func TestExtractPageData(t *testing.T) {
	html := `<html><head><title> My Page </title>
<meta name="description" content="A description"></head><body>
<h1>Heading One</h1>
<h2>Heading Two</h2>
<p>Some body text here.</p>
</body></html>`

	doc := mustDoc(t, html)
	data := ExtractPageData(doc, "https://example.com/page")

	if data.Title != "My Page" {
		t.Errorf("Expected trimmed title, got %q", data.Title)
	}
	if data.MetaDescription != "A description" {
		t.Errorf("Expected meta description, got %q", data.MetaDescription)
	}
	if len(data.Headings) != 2 {
		t.Errorf("Expected 2 headings, got %v", data.Headings)
	}
	if data.ContentLength == 0 {
		t.Error("Expected non-zero content length")
	}
}

func TestDetectSpecialElements(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		check func(SpecialElements) bool
	}{
		{
			name:  "price from yen text",
			html:  `<html><body><p>1,980円</p></body></html>`,
			check: func(s SpecialElements) bool { return s.Price },
		},
		{
			name:  "review from star rating",
			html:  `<html><body><p>★★★★☆</p></body></html>`,
			check: func(s SpecialElements) bool { return s.Review },
		},
		{
			name:  "event from time element",
			html:  `<html><body><time datetime="2026-10-01">Oct 1</time></body></html>`,
			check: func(s SpecialElements) bool { return s.Event },
		},
		{
			name:  "faq from class hint",
			html:  `<html><body><div class="faq-list"><p>content</p></div></body></html>`,
			check: func(s SpecialElements) bool { return s.FAQ },
		},
		{
			name:  "job from body text",
			html:  `<html><body><p>応募資格: 経験3年以上</p></body></html>`,
			check: func(s SpecialElements) bool { return s.Job },
		},
		{
			name:  "nothing on plain text",
			html:  `<html><body><p>just a paragraph</p></body></html>`,
			check: func(s SpecialElements) bool { return s == SpecialElements{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, tt.html)
			data := ExtractPageData(doc, "https://example.com/")
			if !tt.check(data.Special) {
				t.Errorf("Detection failed, got %+v", data.Special)
			}
		})
	}
}
