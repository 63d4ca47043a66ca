package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"trip-planner-cli/internal/adapters/repositories"
	"trip-planner-cli/internal/config"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// Maintenance tool for the trip log: ensures the schema exists and dumps
// the most recently recorded trips.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("TRIP_LOG_PATH", "data/trips.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("open sqlite database %q: %v", dbPath, err)
	}
	defer db.Close()

	log.Println("Initializing trip log schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	tripLog := repositories.NewSqliteTripLog(db)
	trips, err := tripLog.ListRecent(context.Background(), 50)
	if err != nil {
		log.Fatalf("listing trips failed: %v", err)
	}

	if len(trips) == 0 {
		fmt.Println("No trips recorded yet.")
		return
	}

	for _, t := range trips {
		fmt.Printf(
			"#%d %s  %s -> %s: %s, %.2f miles, %.2f gallons\n",
			t.TripID,
			t.RequestedAt.Format("2006-01-02 15:04"),
			t.Origin, t.Destination,
			t.FormattedTime, t.DistanceMiles, t.FuelGallons,
		)
	}
}
