package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"mentorlink/internal/config"
)

// Restores the configured database from a backup file produced by
// scripts/db_backup. The current database is kept aside as
// <db>.pre-restore before it is overwritten.
func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	var backupPath = flag.String("backup", "", "Backup file to restore from (required)")
	flag.Parse()

	if *backupPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: db_restore -backup <file> [-config <file>]")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	dst := cfg.DatabasePath

	// keep the current database around in case the backup turns out bad
	if _, err := os.Stat(dst); err == nil {
		safety := dst + ".pre-restore"
		if err := copyFile(dst, safety); err != nil {
			fmt.Fprintf(os.Stderr, "Restore error: failed to keep %s: %v\n", safety, err)
			os.Exit(1)
		}
	}

	if err := copyFile(*backupPath, dst); err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Restored %s from %s at %s\n", dst, *backupPath, time.Now().Format(time.RFC3339))
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
