package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/app"
)

func main() {
	// Optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
