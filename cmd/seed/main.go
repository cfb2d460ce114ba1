// Command main seeds the EventNFT test accounts.
package main

import (
	"context"
	"flag"
	"log"

	"eventnft/internal/config"
	"eventnft/internal/database"
	"eventnft/internal/repository"
	"eventnft/internal/seed"
)

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "Path to the settings file")
	flag.Parse()

	log.Println("🌱 EventNFT Account Seeder")
	log.Println("==========================")

	cfg, err := config.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Firestore: %v", err)
	}

	s := seed.NewSeeder(repository.NewFirestoreStore(client))

	// Per-record failures are already logged and isolated; they do not
	// change the exit code of a run that bootstrapped successfully.
	s.Run(ctx)

	seed.PrintCredentials(cfg)

	log.Println("✨ All done! Use the credentials above to log in.")
}
