// Command tokengen signs a staff access token with the configured RSA key.
// The server must share the keypair through JWT_PRIVATE_KEY and JWT_PUBLIC_KEY.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"savingsbook/internal/config"
	"savingsbook/internal/models"
	"savingsbook/internal/services"
)

func main() {
	subject := flag.String("sub", "", "staff id carried as the token subject")
	role := flag.String("role", models.RoleTeller, "staff role: teller, accountant or admin")
	flag.Parse()

	if os.Getenv("JWT_PRIVATE_KEY") == "" {
		log.Fatal("JWT_PRIVATE_KEY must be set so the server can verify the token")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	token, expiresAt, err := services.NewTokenService(&cfg.JWT).GenerateAccessToken(*subject, *role)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
}
