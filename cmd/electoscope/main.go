package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/electoscope/electoscope/internal/app"
	"github.com/electoscope/electoscope/internal/logger"
	"github.com/electoscope/electoscope/web"
)

var (
	version = "dev"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	dataDir := flag.String("data", "data", "Directory with the CSV result exports")
	dbPath := flag.String("db", "", "SQLite results database (overrides -data)")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	askTimeout := flag.Duration("asktimeout", 45*time.Second, "Per-question timeout for the ask panel")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Electoscope - Election results dashboard

Usage:
  electoscope [options]

Options:
  -port int        HTTP server port (default 8080)
  -data string     Directory with the CSV result exports (default "data")
  -db string       SQLite results database (overrides -data)
  -loglevel str    Log level: debug, info, warn, error (default "info")
  -asktimeout dur  Per-question timeout for the ask panel (default 45s)
  -version         Show version and exit
  -help            Show this help message

Environment:
  GEMINI_API_KEY   API key for the question panel (also read from .env);
                   when unset the panel is disabled

Examples:
  electoscope                        # Serve the exports in ./data
  electoscope -data /srv/eci2024     # Use a custom export directory
  electoscope -db results.db         # Read from a prepared SQLite file
  electoscope -port 80 -loglevel warn

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("electoscope %s\n", version)
		os.Exit(0)
	}

	// .env is optional; a missing file is not an error
	godotenv.Load()

	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	a, err := app.New(appLog, app.Config{
		Port:         *port,
		DataDir:      *dataDir,
		SQLitePath:   *dbPath,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		AskTimeout:   *askTimeout,
	}, web.GetStaticFS())
	if err != nil {
		log.Fatal("Failed to initialize application: ", err)
	}

	if err := a.LoadDataset(context.Background()); err != nil {
		appLog.Error("Initial dataset load failed, serving without data until a reload succeeds", "error", err)
	}

	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
