package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/schema-advisor/backend/analyzer"
	"github.com/schema-advisor/backend/logging"
	"github.com/schema-advisor/backend/metrics"
	"github.com/schema-advisor/backend/middleware"
)

func setupGinMode() {
	// Set Gin mode based on environment variable
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		// Default to release mode if not specified
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

// ServeAction runs the HTTP API server.
func ServeAction(c *cli.Context) error {
	setupGinMode()

	log := logging.NewLogger(logging.Config{
		Level:  c.String("log-level"),
		Pretty: os.Getenv(logging.ENV_DEV_MODE) == "true",
	})

	pageAnalyzer, err := analyzer.New(c.String("data-dir"), log)
	if err != nil {
		return err
	}
	defer pageAnalyzer.Shutdown()

	rateLimiter := middleware.NewRateLimiter(2, 5) // 2 requests per second, bucket size of 5
	serviceMetrics := metrics.NewMetrics()
	pageAnalyzer.SetCacheObserver(serviceMetrics)

	// Initialize statistics
	stats := logging.Initialize(c.String("data-dir"))

	r := gin.New()

	// Add middlewares
	r.Use(middleware.ErrorHandler(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(serviceMetrics.HTTPMiddleware())
	r.Use(rateLimiter.RateLimit())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Visitor and analysis tracking
	r.Use(func(c *gin.Context) {
		start := time.Now()

		stats.TrackVisitor(c.ClientIP())

		c.Next()

		// Only track analysis requests
		if c.Request.URL.Path == "/api/analyze" && c.Request.Method == "POST" {
			loadTime := float64(time.Since(start).Milliseconds())
			pageType, _ := c.Get("pageType")
			typeName, _ := pageType.(string)
			stats.TrackAnalysis(c.GetString("analyzedURL"), typeName, loadTime, c.Writer.Status() >= 400)
		}

		// Periodically save statistics
		if stats.GetStatistics()["totalRequests"].(int)%100 == 0 {
			go stats.Save()
		}
	})

	// API routes
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// Analysis endpoint
		api.POST("/analyze", analyzeHandler(pageAnalyzer, serviceMetrics))

		// Statistics endpoints
		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, stats.GetStatistics())
		})
		api.GET("/statistics/monthly", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"current": pageAnalyzer.GetStats().GetCurrentStats(),
				"months":  pageAnalyzer.GetStats().GetAllMonths(),
			})
		})

		// Cache visibility
		api.GET("/cache", func(c *gin.Context) {
			c.JSON(http.StatusOK, pageAnalyzer.GetCacheStats())
		})
	}

	// Prometheus scrape endpoint
	r.GET("/metrics", metrics.Handler())

	port := c.String("port")
	log.Info().Str("port", port).Msg("server starting")
	return r.Run(":" + port)
}

func analyzeHandler(pageAnalyzer *analyzer.Analyzer, serviceMetrics *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			URL string `json:"url" binding:"required,url"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid URL provided",
			})
			return
		}

		start := time.Now()
		report, err := pageAnalyzer.Analyze(request.URL)
		if err != nil {
			serviceMetrics.AnalysisErrorsTotal.Inc()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to analyze URL: " + err.Error(),
			})
			return
		}

		set := report.StructuredData.Recommendations
		serviceMetrics.RecordAnalysis(
			string(report.Classification.PrimaryType),
			time.Since(start),
			len(set.Missing)+len(set.Improvements)+len(set.Optional),
		)

		c.Set("analyzedURL", request.URL)
		c.Set("pageType", string(report.Classification.PrimaryType))

		c.JSON(http.StatusOK, report)
	}
}
