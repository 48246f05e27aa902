package main

import (
	"flag"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"opsdiag/adapters/postgres"
)

func main() {
	reset := flag.Bool("reset", false, "drop all tables before recreating the schema")
	flag.Parse()

	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if flag.NArg() > 0 {
		databaseURL = flag.Arg(0)
	}
	if databaseURL == "" {
		log.Fatal("Usage: migrate [-reset] <database_url> (or set DATABASE_URL)")
	}

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if *reset {
		log.Println("Resetting database - dropping all tables...")
		if err := postgres.Reset(db); err != nil {
			log.Fatalf("Failed to reset schema: %v", err)
		}
	} else {
		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}
	}

	log.Println("Schema is up to date")
}
