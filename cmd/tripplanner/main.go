package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"trip-planner-cli/internal/adapters/mapquest"
	"trip-planner-cli/internal/adapters/repositories"
	"trip-planner-cli/internal/cli"
	"trip-planner-cli/internal/config"
	"trip-planner-cli/internal/ports"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the MapQuest adapter and the optional SQLite trip log behind
// ports and hands control to the interactive runner.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	// When set, the key prompt is skipped.
	apiKey := os.Getenv("MAPQUEST_API_KEY")

	// Trip logging is off unless a database path is configured, so the
	// default session writes no files.
	var tripLog ports.TripLog
	if logPath := config.Get("TRIP_LOG_PATH", ""); logPath != "" {
		db, err := openDB(logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		if err := repositories.InitSchema(db); err != nil {
			log.Fatal(err)
		}
		tripLog = repositories.NewSqliteTripLog(db)
	}

	runner := &cli.Runner{
		In:     os.Stdin,
		Out:    os.Stdout,
		APIKey: apiKey,
		NewProvider: func(key string) ports.RouteProvider {
			return mapquest.NewClient(key)
		},
		TripLog: tripLog,
	}

	if err := runner.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
