// Package httpapi wires the authentication core into a fiber application:
// POST /signup, POST /signin (local strategy), and GET / behind the bearer
// strategy. Request logging and CORS sit in front of every route.
package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"authkit/auth"
	"authkit/internal/store"
)

// Config holds the HTTP layer options
type Config struct {
	// ProtectedMessage is the static payload served on GET /
	ProtectedMessage string
}

// New builds the fiber application with all routes registered. Unmatched
// routes get fiber's default 404.
func New(cfg Config, s store.Store, auther *auth.Authenticator, logger auth.Logger) *fiber.App {
	if logger == nil {
		logger = auth.DefaultLogger()
	}

	app := fiber.New(fiber.Config{
		AppName:               "authkit",
		DisableStartupMessage: true,
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	h := NewHandler(s, auther, cfg.ProtectedMessage, logger)

	app.Post("/signup", h.Signup)
	app.Post("/signin", h.Signin)
	app.Get("/", RequireAuth(auther, logger), h.Protected)

	return app
}
