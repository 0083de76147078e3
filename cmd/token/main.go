// Command token mints a bearer token for calling a server started with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	jwtmw "treasury_backend/internal/platform/jwt"
)

func main() {
	clientID := flag.String("client", "dev", "client id placed in the sub claim")
	scope := flag.String("scope", jwtmw.DefaultScope, "scope claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := jwtmw.NewGenerator(secret, *ttl).GenerateToken(*clientID, *scope)
	if err != nil {
		slog.Error("failed to mint token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
