package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"campusconnect/internal/seed"
	"campusconnect/internal/wire"
)

func main() {
	reconcile := flag.Bool("reconcile", false, "recompute likes_count/comments_count for drifted posts")
	token := flag.Bool("token", false, "print a bearer token for the demo user")
	flag.Parse()

	app, cleanup, err := wire.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	ctx := context.Background()
	if _, err := seed.Run(ctx, app.DB); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	if *reconcile {
		repaired, err := app.Counters.Reconcile(ctx, app.DB)
		if err != nil {
			log.Fatalf("Reconcile failed: %v", err)
		}
		log.Printf("Reconciled %d posts", repaired)
	}

	if *token {
		tok, err := app.Tokens.GenerateToken(seed.DemoIdentity)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(tok)
	}
}
