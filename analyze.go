package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/schema-advisor/backend/analyzer"
	"github.com/schema-advisor/backend/logging"
)

// AnalyzeAction analyzes a single URL or local HTML file and prints the
// JSON report to stdout.
func AnalyzeAction(c *cli.Context) error {
	target := c.Args().First()
	if target == "" {
		return fmt.Errorf("expected a URL or HTML file path")
	}

	log := logging.NewLogger(logging.Config{
		Level:  "error",
		Output: os.Stderr,
	})

	var report *analyzer.Report

	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		pageAnalyzer, err := analyzer.New(os.TempDir(), log)
		if err != nil {
			return err
		}
		defer pageAnalyzer.Shutdown()

		report, err = pageAnalyzer.Analyze(target)
		if err != nil {
			return err
		}
	} else {
		html, err := os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("read %s: %w", target, err)
		}

		pageURL := c.String("url")
		if pageURL == "" {
			pageURL = "file://" + target
		}

		doc, data, err := analyzer.ParseHTML(string(html), pageURL)
		if err != nil {
			return err
		}

		pageAnalyzer, err := analyzer.New(os.TempDir(), log)
		if err != nil {
			return err
		}
		defer pageAnalyzer.Shutdown()

		report = pageAnalyzer.AnalyzeDocument(doc, data)
	}

	var out []byte
	var err error
	if c.Bool("pretty") {
		out, err = json.MarshalIndent(report, "", "  ")
	} else {
		out, err = json.Marshal(report)
	}
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
