package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MonthlyStats represents analysis statistics for a specific month
type MonthlyStats struct {
	Analyses            int            `json:"analyses"`
	CacheHits           int            `json:"cache_hits"`
	CacheMisses         int            `json:"cache_misses"`
	Classifications     map[string]int `json:"classifications"`
	RecommendationItems int            `json:"recommendation_items"`
	LastUpdated         time.Time      `json:"last_updated"`
}

// Storage handles persistent storage of statistics
type Storage struct {
	mutex       sync.RWMutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
}

// NewStorage creates a new statistics storage instance
func NewStorage(dataDir string) (*Storage, error) {
	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	filePath := filepath.Join(dataDir, "stats.json")
	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filePath,
		writeBuffer: make(chan struct{}, 1), // Buffer for write requests
		done:        make(chan struct{}),
	}

	// Load existing stats if file exists
	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	// Start background writer
	go s.backgroundWriter()

	return s, nil
}

// load reads statistics from file
func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.stats)
}

// save writes statistics to file
func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	// Write to temporary file first
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	// Rename temporary file to actual file (atomic operation)
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile) // Clean up temp file if rename fails
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// backgroundWriter handles periodic writes to disk
func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			// Immediate write requested
			s.save()
		case <-ticker.C:
			// Periodic write
			s.save()
		case <-s.done:
			return
		}
	}
}

// getCurrentMonth returns the current month key in YYYY-MM format
func getCurrentMonth() string {
	return time.Now().Format("2006-01")
}

// requestWrite signals that a write to disk is needed
func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
		// Write requested
	default:
		// Buffer full, write already pending
	}
}

// current returns the stats bucket for the current month, creating it if
// needed. Callers must hold the write lock.
func (s *Storage) current() *MonthlyStats {
	month := getCurrentMonth()
	stats, exists := s.stats[month]
	if !exists {
		stats = &MonthlyStats{Classifications: make(map[string]int)}
		s.stats[month] = stats
	}
	if stats.Classifications == nil {
		stats.Classifications = make(map[string]int)
	}
	return stats
}

// touch updates the timestamp and schedules a write if enough time has
// passed. Callers must hold the write lock.
func (s *Storage) touch(stats *MonthlyStats) {
	stats.LastUpdated = time.Now()
	if time.Since(s.lastWrite) > time.Minute {
		s.requestWrite()
		s.lastWrite = time.Now()
	}
}

// RecordAnalysis records a completed analysis and its classified page type
func (s *Storage) RecordAnalysis(pageType string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stats := s.current()
	stats.Analyses++
	if pageType != "" {
		stats.Classifications[pageType]++
	}
	s.touch(stats)
}

// RecordRecommendations records how many schema recommendations were issued
func (s *Storage) RecordRecommendations(count int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stats := s.current()
	stats.RecommendationItems += count
	s.touch(stats)
}

// RecordCacheHit records a served-from-cache analysis
func (s *Storage) RecordCacheHit() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stats := s.current()
	stats.CacheHits++
	s.touch(stats)
}

// RecordCacheMiss records an analysis that had to be computed
func (s *Storage) RecordCacheMiss() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stats := s.current()
	stats.CacheMisses++
	s.touch(stats)
}

// snapshot copies a stats bucket, including its classifications map, so the
// result can be read without holding the lock. Callers must hold at least
// the read lock.
func snapshot(stats *MonthlyStats) MonthlyStats {
	copied := *stats
	copied.Classifications = make(map[string]int, len(stats.Classifications))
	for pageType, count := range stats.Classifications {
		copied.Classifications[pageType] = count
	}
	return copied
}

// GetCurrentStats returns statistics for the current month
func (s *Storage) GetCurrentStats() MonthlyStats {
	month := getCurrentMonth()

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if stats, exists := s.stats[month]; exists {
		return snapshot(stats)
	}
	return MonthlyStats{}
}

// Cleanup removes statistics older than the current and previous month
func (s *Storage) Cleanup() {
	currentTime := time.Now()
	currentMonth := currentTime.Format("2006-01")
	previousMonth := currentTime.AddDate(0, -1, 0).Format("2006-01")

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Only keep current and previous month
	for key := range s.stats {
		if key != currentMonth && key != previousMonth {
			delete(s.stats, key)
		}
	}

	// Request a write to persist changes
	s.requestWrite()
}

// GetMonthlyStats returns statistics for a specific month
func (s *Storage) GetMonthlyStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if stats, exists := s.stats[yearMonth]; exists {
		return snapshot(stats), true
	}
	return MonthlyStats{}, false
}

// GetAllMonths returns a sorted list of all months that have statistics
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}

	// Sort months in descending order (newest first)
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}

// Shutdown stops the background writer and flushes statistics to disk
func (s *Storage) Shutdown() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return s.save()
}
