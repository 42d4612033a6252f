package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"WireCrew/internal/server"
)

func main() {
	addr := flag.String("addr", "", "address to listen on (overrides WIRECREW_ADDR)")
	envFile := flag.String("env", "", "path to a .env file to load before reading config")
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("load %s: %v", *envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("load .env: %v", err)
		}
	}

	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	if err := server.Run(cfg, server.NewMemoryStore()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
