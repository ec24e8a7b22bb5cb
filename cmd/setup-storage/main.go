package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/expostands/expostands-api/internal/config"
	"github.com/expostands/expostands-api/internal/storage"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Ensure all configured storage buckets exist. Safe to run repeatedly.

Usage:

setup-storage [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  setup-storage -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store := storage.New(cfg.StorageRoot, cfg.SiteBaseURL)

	created, existing, failed := 0, 0, 0
	for name := range store.Buckets {
		wasCreated, err := store.EnsureBucket(name)
		if err != nil {
			log.Printf("bucket %s: FAILED: %v", name, err)
			failed++
			continue
		}
		if wasCreated {
			log.Printf("bucket %s: created", name)
			created++
		} else {
			log.Printf("bucket %s: already exists", name)
			existing++
		}
	}

	log.Printf("done: %d created, %d existing, %d failed", created, existing, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
