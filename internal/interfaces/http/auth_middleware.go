package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/pkg/jwt"
)

// Locals keys for the authenticated identity in Fiber.
const (
	LocalUserID   = "user_id"
	LocalBranchID = "branch_id"
	LocalRole     = "role"
)

// SessionCookie is the browser credential. Header credentials are fallbacks
// for non-browser clients.
const SessionCookie = "session_token"

// apiKeyResolver resolves an X-API-Key value to the issuing user's ID.
// Implemented by *usecase.APIKeyUseCase; the interface avoids a circular
// import.
type apiKeyResolver interface {
	ResolveUserID(ctx context.Context, key string) (string, error)
}

// userLoader fetches the key owner's profile so key requests carry the same
// identity claims a JWT would. Implemented by *usecase.UserUseCase.
type userLoader interface {
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
}

// AuthMiddleware authenticates the request and stores user_id, branch_id and
// role in c.Locals. Credential precedence: session cookie, then Bearer token,
// then X-API-Key.
func AuthMiddleware(jwtSecret string, keys apiKeyResolver, users userLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Session cookie
		if token := c.Cookies(SessionCookie); token != "" {
			return authFromJWT(c, jwtSecret, token)
		}

		// 2) Authorization: Bearer <token>
		if authHeader := c.Get("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
			}
			token := strings.TrimSpace(parts[1])
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
			}
			return authFromJWT(c, jwtSecret, token)
		}

		// 3) X-API-Key
		if key := c.Get("X-API-Key"); key != "" {
			return authFromAPIKey(c, keys, users, key)
		}

		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "credentials required"})
	}
}

func authFromJWT(c *fiber.Ctx, secret, token string) error {
	userID, branchID, role, err := jwt.Parse(secret, token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
	}
	c.Locals(LocalUserID, userID)
	c.Locals(LocalBranchID, branchID)
	c.Locals(LocalRole, role)
	return c.Next()
}

func authFromAPIKey(c *fiber.Ctx, keys apiKeyResolver, users userLoader, key string) error {
	userID, err := keys.ResolveUserID(c.Context(), key)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AUTH_CHECK_FAILED", Message: "could not verify the key, try again later"})
	}
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "unknown or revoked key"})
	}
	user, err := users.GetByID(c.Context(), userID)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "key owner not found"})
	}
	branchID := ""
	if user.BranchID != nil {
		branchID = *user.BranchID
	}
	c.Locals(LocalUserID, user.ID)
	c.Locals(LocalBranchID, branchID)
	c.Locals(LocalRole, user.Role)
	return c.Next()
}

// GetUserID returns the UserID from the context (after auth middleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetBranchID returns the BranchID from the context; "" for HQ.
func GetBranchID(c *fiber.Ctx) string {
	v := c.Locals(LocalBranchID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole returns the role claim from the context.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetActor bundles the identity claims for the usecase layer.
func GetActor(c *fiber.Ctx) dto.Actor {
	return dto.Actor{
		UserID:   GetUserID(c),
		BranchID: GetBranchID(c),
		Role:     entity.Role(GetRole(c)),
	}
}
