// Command identity-stub runs a local stand-in for the external identity
// service so gatekeeper can be exercised end to end without one.
package main

import (
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"gatekeeper/internal/infra/identity"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	secret := os.Getenv("IDENTITY_STUB_SECRET")
	if secret == "" {
		secret = "identity-stub-development-secret"
	}

	port := 9096
	if raw := os.Getenv("IDENTITY_STUB_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Error("Invalid IDENTITY_STUB_PORT", slog.String("value", raw))
			os.Exit(1)
		}
		port = parsed
	}

	stub := identity.NewStub(secret, logger)
	if err := stub.SeedUser("123", "u@example.com", "correct"); err != nil {
		logger.Error("Failed to seed stub user", slog.Any("error", err))
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	stub.Register(e)

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(port))
	logger.Info("Starting identity stub", slog.String("hostPort", hostPort))
	if err := e.Start(hostPort); err != nil {
		logger.Error("Identity stub stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
