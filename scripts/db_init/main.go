package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	dbfs "mentorlink/db"
	"mentorlink/internal/config"
	"mentorlink/internal/db"
)

// Creates the configured database file and brings its schema up to date.
// Safe to re-run; already-applied migrations are skipped.
func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB open error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database %s is up to date.\n", cfg.DatabasePath)
}
