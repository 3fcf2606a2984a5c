package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		// If .env.development doesn't exist, try regular .env
		godotenv.Load()
	}
}

func main() {
	loadEnv()

	app := &cli.App{
		Name:  "schema-advisor",
		Usage: "on-page SEO and structured-data analysis for webpages",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Usage:   "port to listen on",
						EnvVars: []string{"PORT"},
						Value:   "8082",
					},
					&cli.StringFlag{
						Name:    "data-dir",
						Usage:   "directory for persisted statistics",
						EnvVars: []string{"DATA_DIR"},
						Value:   "data",
					},
					&cli.StringFlag{
						Name:    "log-level",
						Usage:   "log level (debug, info, warn, error)",
						EnvVars: []string{"LOG_LEVEL"},
						Value:   "info",
					},
				},
				Action: ServeAction,
			},
			{
				Name:      "analyze",
				Usage:     "analyze a single URL or local HTML file and print the JSON report",
				ArgsUsage: "<url-or-file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "indent the JSON output",
						Value: true,
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "page URL to attribute to a local HTML file",
					},
				},
				Action: AnalyzeAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
