package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"authkit/auth"
	"authkit/internal/store"
)

// Client-facing error messages, matching the wire contract exactly.
const (
	msgMissingFields = "You must provide email and password"
	msgEmailInUse    = "Email is in use"
	msgUnauthorized  = "Unauthorized"
	msgInternal      = "Something went wrong"
)

// Handler serves the authentication routes
type Handler struct {
	store   store.Store
	auther  *auth.Authenticator
	message string
	logger  auth.Logger
}

// NewHandler returns a Handler. message is the static payload served on the
// protected route.
func NewHandler(s store.Store, auther *auth.Authenticator, message string, logger auth.Logger) *Handler {
	return &Handler{
		store:   s,
		auther:  auther,
		message: message,
		logger:  logger,
	}
}

// Signup creates a user and responds with a session token. Missing fields
// and duplicate emails both answer 422.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Error: msgMissingFields})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Error: msgMissingFields})
	}

	user, err := h.store.Create(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailInUse) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Error: msgEmailInUse})
		}
		h.logger.Error("signup create failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msgInternal})
	}

	token, err := h.auther.TokenService().Generate(user.Identity())
	if err != nil {
		h.logger.Error("signup token generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msgInternal})
	}

	return c.JSON(TokenResponse{Token: token})
}

// Signin verifies email and password through the local strategy and
// responds with a session token. All rejections share one generic body.
func (h *Handler) Signin(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return unauthorized(c)
	}

	token, err := h.auther.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if auth.IsAuthRejected(err) {
			return unauthorized(c)
		}
		h.logger.Error("signin failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msgInternal})
	}

	return c.JSON(TokenResponse{Token: token})
}

// Protected serves the static payload to bearer-authenticated requests
func (h *Handler) Protected(c *fiber.Ctx) error {
	return c.JSON(MessageResponse{Message: h.message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: msgUnauthorized})
}
