package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const createFormDrafts = `
	CREATE TABLE IF NOT EXISTS form_drafts (
		namespace      TEXT PRIMARY KEY,
		schema_version INT NOT NULL,
		payload        JSONB NOT NULL,
		updated_at     TIMESTAMP NOT NULL DEFAULT NOW()
	);
`

const dropFormDrafts = `DROP TABLE IF EXISTS form_drafts;`

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "up", "migration mode: up or down")
	flag.Parse()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL not set in environment")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	if err := run(db, *mode); err != nil {
		log.Fatal(err)
	}
}

func run(db *sql.DB, mode string) error {
	switch mode {
	case "up":
		if _, err := db.Exec(createFormDrafts); err != nil {
			return fmt.Errorf("failed to create form_drafts table: %w", err)
		}
		fmt.Println("✅ form_drafts table ready.")
		return nil
	case "down":
		if _, err := db.Exec(dropFormDrafts); err != nil {
			return fmt.Errorf("failed to drop form_drafts table: %w", err)
		}
		fmt.Println("✅ form_drafts table dropped.")
		return nil
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}
}
