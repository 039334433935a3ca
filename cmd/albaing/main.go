package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/JGS-JAVA/albaing-personalpart/internal/app"
	"github.com/JGS-JAVA/albaing-personalpart/internal/config"
)

func main() {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
