package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/auth"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/config"
)

// token prints a bearer token for the trigger routes, signed with the
// same JWT_* settings the API reads.
func main() {
	subject := flag.String("subject", "", "caller name recorded in the token, e.g. minio-webhook")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: JWT_TOKEN_TTL)")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "usage: token -subject <name> [-ttl 720h]")
		os.Exit(2)
	}

	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.SecretKey == "" {
		log.Fatal("JWT_SECRET_KEY must be set")
	}
	if *ttl > 0 {
		cfg.TokenTTL = *ttl
	}

	token, expiresAt, err := auth.NewJWTService(cfg.SecretKey, cfg.Issuer, cfg.TokenTTL).GenerateToken(*subject)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
}
