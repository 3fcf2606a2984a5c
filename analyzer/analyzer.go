// Package analyzer orchestrates a full page analysis: fetch and parse,
// on-page rule checks, AI readiness checks, page-type classification,
// structured-data inventory and schema recommendations.
package analyzer

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/schema-advisor/backend/classifier"
	"github.com/schema-advisor/backend/recommend"
	"github.com/schema-advisor/backend/schema"
	"github.com/schema-advisor/backend/stats"
)

type cacheEntry struct {
	report    *Report
	timestamp time.Time
}

// CacheStats provides statistics about the analyzer's cache.
type CacheStats struct {
	Entries     int           `json:"entries"`
	CacheHits   int           `json:"cacheHits"`
	CacheMisses int           `json:"cacheMisses"`
	CacheTTL    time.Duration `json:"cacheTTL"`
}

// CacheObserver is notified of cache hits and misses, in addition to the
// persisted monthly statistics.
type CacheObserver interface {
	RecordCacheHit()
	RecordCacheMiss()
}

// Analyzer performs full analyses of URLs with result caching. Safe for
// concurrent use; the core pipeline is pure and per-request.
type Analyzer struct {
	client          *http.Client
	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	stats           *stats.Storage
	observer        CacheObserver
	log             zerolog.Logger
	classifier      *classifier.Classifier
	engine          *recommend.Engine
}

// New creates an Analyzer with its stats storage rooted at dataDir.
func New(dataDir string, log zerolog.Logger) (*Analyzer, error) {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	statsStorage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	a := &Analyzer{
		client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		stats:           statsStorage,
		log:             log,
		classifier:      classifier.New(),
		engine:          recommend.New(),
	}

	go a.periodicCleanup()

	return a, nil
}

func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		a.cleanup()
	}
}

// cleanup removes expired entries and enforces the cache size limit.
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	if len(a.cache) > a.maxCacheSize {
		entries := make([]struct {
			key       string
			timestamp time.Time
		}, 0, len(a.cache))
		for key, entry := range a.cache {
			entries = append(entries, struct {
				key       string
				timestamp time.Time
			}{key, entry.timestamp})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})
		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}

	a.lastCleanup = now
}

// SetCacheObserver registers an observer for cache hits and misses. Must be
// called before the analyzer starts serving requests.
func (a *Analyzer) SetCacheObserver(o CacheObserver) {
	a.observer = o
}

// SetCacheTTL sets the cache TTL.
func (a *Analyzer) SetCacheTTL(ttl time.Duration) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cacheTTL = ttl
}

// ClearCache clears the analysis cache.
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

func cacheKey(url string) string {
	hash := md5.Sum([]byte(url))
	return hex.EncodeToString(hash[:])
}

// IsCached reports whether a URL has a fresh cached report.
func (a *Analyzer) IsCached(url string) bool {
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[cacheKey(url)]
	return found && time.Since(entry.timestamp) < a.cacheTTL
}

// GetCacheStats returns cache statistics for the current month.
func (a *Analyzer) GetCacheStats() CacheStats {
	current := a.stats.GetCurrentStats()

	a.cacheMutex.RLock()
	entries := len(a.cache)
	ttl := a.cacheTTL
	a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:     entries,
		CacheHits:   current.CacheHits,
		CacheMisses: current.CacheMisses,
		CacheTTL:    ttl,
	}
}

// Analyze performs a complete analysis of the given URL, serving cached
// reports when fresh.
func (a *Analyzer) Analyze(url string) (*Report, error) {
	if time.Since(a.lastCleanup) > a.cleanupInterval {
		go a.cleanup()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := cacheKey(url)
	a.cacheMutex.RLock()
	if entry, found := a.cache[key]; found && time.Since(entry.timestamp) < a.cacheTTL {
		a.cacheMutex.RUnlock()
		a.stats.RecordCacheHit()
		if a.observer != nil {
			a.observer.RecordCacheHit()
		}
		return entry.report, nil
	}
	a.cacheMutex.RUnlock()
	a.stats.RecordCacheMiss()
	if a.observer != nil {
		a.observer.RecordCacheMiss()
	}

	report, err := a.AnalyzeWithContext(ctx, url)
	if err != nil {
		return nil, err
	}

	a.cacheMutex.Lock()
	a.cache[key] = cacheEntry{report: report, timestamp: time.Now()}
	a.cacheMutex.Unlock()

	return report, nil
}

// AnalyzeWithContext fetches and analyzes a URL without consulting the
// cache.
func (a *Analyzer) AnalyzeWithContext(ctx context.Context, url string) (*Report, error) {
	start := time.Now()

	doc, data, err := a.loadDocument(ctx, url)
	if err != nil {
		return nil, err
	}

	report := a.AnalyzeDocument(doc, data)

	a.stats.RecordAnalysis(string(report.Classification.PrimaryType))
	set := report.StructuredData.Recommendations
	a.stats.RecordRecommendations(len(set.Missing) + len(set.Improvements) + len(set.Optional))
	a.log.Info().
		Str("url", url).
		Str("pageType", string(report.Classification.PrimaryType)).
		Float64("score", report.Score).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")

	return report, nil
}

// AnalyzeDocument runs the full in-process pipeline over an already-parsed
// document. It never fails: every stage has a defined fallback.
func (a *Analyzer) AnalyzeDocument(doc *goquery.Document, data classifier.ExtractedPageData) *Report {
	report := &Report{URL: data.URL}

	report.OnPage.Title = analyzeTitleTag(doc)
	report.OnPage.Meta = analyzeMetaTags(doc)
	report.OnPage.Headers = analyzeHeaders(doc)
	report.OnPage.Content = analyzeContent(doc)
	report.OnPage.Links = analyzeLinks(doc, data.URL)
	report.OnPage.Score = onPageScore(report.OnPage)

	inv := schema.ExtractInventory(doc)
	report.AIReadiness = analyzeAIReadiness(doc, data, inv)

	report.Classification = a.classifier.Classify(data)
	recs := a.engine.GenerateRecommendations(report.Classification, inv, doc, data)

	report.StructuredData = StructuredDataReport{
		Existing: inv,
		Output:   recs,
	}

	report.Score = overallScore(report)
	report.Recommendations = a.generateRecommendations(report)

	return report
}

func onPageScore(on OnPageAnalysis) float64 {
	return float64(on.Title.Score)*0.25 +
		float64(on.Meta.Score)*0.25 +
		float64(on.Headers.Score)*0.2 +
		float64(on.Content.Score)*0.2 +
		float64(on.Links.Score)*0.1
}

// structuredDataScore rates markup coverage from the recommendation set:
// every unimplemented critical schema costs more than a high one.
func structuredDataScore(set recommend.Set) float64 {
	score := 100.0
	score -= 40 * float64(len(set.Missing))
	score -= 10 * float64(len(set.Improvements))
	if score < 0 {
		return 0
	}
	return score
}

func overallScore(report *Report) float64 {
	return report.OnPage.Score*0.5 +
		float64(report.AIReadiness.Score)*0.2 +
		structuredDataScore(report.StructuredData.Recommendations)*0.3
}

func (a *Analyzer) generateRecommendations(report *Report) []string {
	var recommendations []string

	if !report.OnPage.Title.HasTitle {
		recommendations = append(recommendations, "Add a title tag to your page")
	} else if report.OnPage.Title.Length < 30 {
		recommendations = append(recommendations, "Title tag is too short (should be 30-60 characters)")
	} else if report.OnPage.Title.Length > 60 {
		recommendations = append(recommendations, "Title tag is too long (should be 30-60 characters)")
	}

	if !report.OnPage.Meta.HasDescription {
		recommendations = append(recommendations, "Add a meta description")
	} else if report.OnPage.Meta.DescriptionLen < 120 {
		recommendations = append(recommendations, "Meta description is too short (should be 120-160 characters)")
	} else if report.OnPage.Meta.DescriptionLen > 160 {
		recommendations = append(recommendations, "Meta description is too long (should be 120-160 characters)")
	}

	if report.OnPage.Headers.H1Count == 0 {
		recommendations = append(recommendations, "Add an H1 heading")
	} else if report.OnPage.Headers.H1Count > 1 {
		recommendations = append(recommendations, "Multiple H1 headings found - consider using only one")
	}

	if report.OnPage.Content.WordCount < 300 {
		recommendations = append(recommendations, "Add more content (aim for at least 300 words)")
	}
	if report.OnPage.Content.TotalImages > 0 && report.OnPage.Content.ImagesWithAlt < report.OnPage.Content.TotalImages {
		recommendations = append(recommendations, "Add alt text to all images")
	}

	if report.OnPage.Links.InternalLinks < 3 {
		recommendations = append(recommendations, "Add more internal links to improve site navigation (aim for at least 3-5)")
	}

	recommendations = append(recommendations, aiRecommendations(report.AIReadiness)...)

	for _, item := range report.StructuredData.Recommendations.Missing {
		recommendations = append(recommendations,
			"Add "+item.Schema+" structured data ("+item.Priority+"): "+item.Reason)
	}
	if n := len(report.StructuredData.Recommendations.Improvements); n > 0 {
		recommendations = append(recommendations,
			"Consider "+strconv.Itoa(n)+" additional schema improvement(s) listed in the implementation plan")
	}

	return recommendations
}

// GetStats returns the statistics storage instance.
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Shutdown flushes statistics and releases cached state.
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}

	if a.stats != nil {
		if err := a.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}

	a.cacheMutex.Lock()
	a.cache = nil
	a.cacheMutex.Unlock()

	return nil
}
