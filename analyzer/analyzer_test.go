package analyzer

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/schema-advisor/backend/classifier"
)

const recipePage = `<html><head>
<title>肉じゃがの作り方、基本のレシピを写真付きで解説</title>
<meta name="description" content="定番の肉じゃがを失敗なく作るための基本レシピです。材料の切り方から味付けのコツまで、工程ごとに写真付きで丁寧に解説します。">
<meta name="viewport" content="width=device-width, initial-scale=1">
</head><body>
<h1>肉じゃがの作り方</h1>
<h2>材料（4人分）</h2>
<p>じゃがいも4個、牛肉200g、玉ねぎ1個、にんじん1本。調味料は醤油、みりん、砂糖を使います。家庭にある基本の調味料だけで、誰でも失敗なく定番の味に仕上がります。</p>
<h2>作り方とは</h2>
<p>手順1: じゃがいもを一口大に切る</p>
<p>手順2: 鍋で牛肉を炒める</p>
<p>手順3: 調味料と水を加えて煮込む</p>
<p>調理時間: 45分</p>
<img src="/img/step1.jpg" alt="じゃがいもを切る">
<a href="/recipe/curry">カレーのレシピ</a>
<a href="/recipe/stew">シチューのレシピ</a>
<a href="/about">このサイトについて</a>
<a href="https://schema.org/Recipe">Recipe schema</a>
</body></html>`

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}
	t.Cleanup(func() { a.Shutdown() })
	return a
}

func TestAnalyzeFullPipeline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(recipePage))
	}))
	defer server.Close()

	a := newTestAnalyzer(t)
	url := server.URL + "/recipe/nikujaga"

	report, err := a.Analyze(url)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.URL != url {
		t.Errorf("Expected report URL %q, got %q", url, report.URL)
	}
	if report.Classification.PrimaryType != classifier.TypeRecipe {
		t.Errorf("Expected recipe classification, got %q (scores: %v)",
			report.Classification.PrimaryType, report.Classification.AllScores)
	}
	if !report.OnPage.Title.HasTitle {
		t.Error("Expected title to be detected")
	}
	if report.OnPage.Headers.H1Count != 1 {
		t.Errorf("Expected 1 H1, got %d", report.OnPage.Headers.H1Count)
	}
	if report.AIReadiness.Language != "ja" {
		t.Errorf("Expected ja language, got %q", report.AIReadiness.Language)
	}
	if report.Score < 0 || report.Score > 100 {
		t.Errorf("Overall score out of range: %f", report.Score)
	}
	if len(report.Recommendations) == 0 {
		t.Error("Expected recommendations for a page without structured data")
	}

	// Recipe markup is absent, so it must be the critical recommendation.
	missing := report.StructuredData.Recommendations.Missing
	if len(missing) != 1 || missing[0].Schema != "Recipe" {
		t.Errorf("Expected Recipe as the critical missing schema, got %v", missing)
	}
}

type countingCacheObserver struct {
	hits   int
	misses int
}

func (o *countingCacheObserver) RecordCacheHit()  { o.hits++ }
func (o *countingCacheObserver) RecordCacheMiss() { o.misses++ }

func TestAnalyzeUsesCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(recipePage))
	}))
	defer server.Close()

	a := newTestAnalyzer(t)
	observer := &countingCacheObserver{}
	a.SetCacheObserver(observer)
	url := server.URL + "/recipe/nikujaga"

	if a.IsCached(url) {
		t.Fatal("URL should not be cached before first analysis")
	}
	if _, err := a.Analyze(url); err != nil {
		t.Fatalf("First analyze failed: %v", err)
	}
	if !a.IsCached(url) {
		t.Fatal("URL should be cached after first analysis")
	}
	if _, err := a.Analyze(url); err != nil {
		t.Fatalf("Second analyze failed: %v", err)
	}

	if hits != 1 {
		t.Errorf("Expected 1 upstream fetch, got %d", hits)
	}

	stats := a.GetCacheStats()
	if stats.CacheHits != 1 || stats.CacheMisses != 1 {
		t.Errorf("Expected 1 hit and 1 miss, got %+v", stats)
	}
	if stats.Entries != 1 {
		t.Errorf("Expected 1 cache entry, got %d", stats.Entries)
	}
	if observer.hits != 1 || observer.misses != 1 {
		t.Errorf("Expected observer to see 1 hit and 1 miss, got %d and %d", observer.hits, observer.misses)
	}
}

func TestAnalyzeCacheExpiry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(recipePage))
	}))
	defer server.Close()

	a := newTestAnalyzer(t)
	a.SetCacheTTL(50 * time.Millisecond)
	url := server.URL + "/recipe/nikujaga"

	if _, err := a.Analyze(url); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !a.IsCached(url) {
		t.Fatal("URL should be cached immediately after analysis")
	}

	time.Sleep(60 * time.Millisecond)
	if a.IsCached(url) {
		t.Error("Cache entry should have expired")
	}
}

func TestAnalyzeFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	a := newTestAnalyzer(t)
	if _, err := a.Analyze(server.URL + "/missing"); err == nil {
		t.Error("Expected error for a 404 response")
	}
}

func TestClearCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(recipePage))
	}))
	defer server.Close()

	a := newTestAnalyzer(t)
	url := server.URL + "/page"

	if _, err := a.Analyze(url); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	a.ClearCache()
	if a.IsCached(url) {
		t.Error("Cache should be empty after ClearCache")
	}
}

func TestAnalyzeDocumentOffline(t *testing.T) {
	doc, data, err := ParseHTML(recipePage, "https://example.com/recipe/nikujaga")
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}

	a := newTestAnalyzer(t)
	report := a.AnalyzeDocument(doc, data)

	if report.Classification.PrimaryType != classifier.TypeRecipe {
		t.Errorf("Expected recipe classification, got %q", report.Classification.PrimaryType)
	}
	if report.StructuredData.Existing == nil {
		t.Error("Expected a structured-data inventory, even when empty")
	}
}

func TestAnalyzeTitleTag(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		score int
	}{
		{"no title", "<html><head></head><body></body></html>", 0},
		{"short title", "<html><head><title>Hi</title></head><body></body></html>", 50},
		{"good title", "<html><head><title>A well sized page title for search results</title></head><body></body></html>", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _, err := ParseHTML(tt.html, "https://example.com/")
			if err != nil {
				t.Fatalf("ParseHTML failed: %v", err)
			}
			got := analyzeTitleTag(doc)
			if got.Score != tt.score {
				t.Errorf("Expected score %d, got %d (title %q, length %d)", tt.score, got.Score, got.Title, got.Length)
			}
		})
	}
}

func TestAnalyzeAIReadinessScoring(t *testing.T) {
	html := `<html><head><title>What is structured data?</title></head><body>
<h1>What is structured data?</h1>
<p>` + strings.Repeat("Structured data is machine-readable markup embedded in webpages. ", 3) + `</p>
<p>Q: Why does it matter?</p>
<p>A: Search engines use it to build rich results.</p>
<script type="application/ld+json">{"@type":"FAQPage"}</script>
</body></html>`

	doc, data, err := ParseHTML(html, "https://example.com/faq")
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}

	a := newTestAnalyzer(t)
	report := a.AnalyzeDocument(doc, data)

	ai := report.AIReadiness
	if ai.QuestionHeadings == 0 {
		t.Error("Expected question headings to be counted")
	}
	if !ai.HasFAQBlock {
		t.Error("Expected FAQ block detection")
	}
	if !ai.HasLeadSummary {
		t.Error("Expected lead summary detection")
	}
	if ai.StructuredDataBlocks != 1 {
		t.Errorf("Expected 1 structured data block, got %d", ai.StructuredDataBlocks)
	}
	if ai.Score != 100 {
		t.Errorf("Expected full AI readiness score, got %d", ai.Score)
	}
}
