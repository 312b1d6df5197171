// Command token mints a bearer token for local testing of the API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/dispatch/internal/config"
	"github.com/MrJamesThe3rd/dispatch/internal/http/auth"
)

func main() {
	_ = godotenv.Load()

	role := flag.String("role", string(auth.RoleAgent), "client, driver, manager or agent")
	subject := flag.String("subject", "", "subject id; a random one when empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	id := uuid.New()
	if *subject != "" {
		if id, err = uuid.Parse(*subject); err != nil {
			slog.Error("invalid subject", "error", err)
			os.Exit(1)
		}
	}

	token, err := auth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL).Issue(id, auth.Role(*role))
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
