package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"mentorlink/internal/config"
)

// Copies the configured database file to a timestamped sibling, e.g.
// mentorlink.db -> mentorlink.db.20260901-150405.bak
func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	src := cfg.DatabasePath
	dst := fmt.Sprintf("%s.%s.bak", src, time.Now().Format("20060102-150405"))

	if err := copyFile(src, dst); err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Backup written to %s\n", dst)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
