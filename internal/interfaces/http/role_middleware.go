package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/davinlab/salonlink-api/internal/application/dto"
)

// approvalChecker is the minimal contract the gate middleware needs.
// Implemented by *auth.AuthUseCase; the interface avoids a circular import.
type approvalChecker interface {
	IsApproved(ctx context.Context, userID string) (bool, error)
}

// RequireRole returns a middleware that admits only the listed roles. Must
// run AFTER AuthMiddleware (needs LocalRole).
//
//   - 401 when no role claim is present (auth never ran or token lacked it).
//   - 403 when the authenticated role is not in the list.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "role not found in credentials",
			})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "role '" + role + "' may not access this resource",
			})
		}
		return c.Next()
	}
}

// RequireApproved gates business routes behind the HQ approval flag. The flag
// is read per request, never trusted from the token, so a revocation takes
// effect on the next call. Must run AFTER AuthMiddleware.
//
//   - 403 PENDING_APPROVAL when the profile is not approved.
//   - 503 when the flag cannot be read.
func RequireApproved(checker approvalChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id not found in credentials",
			})
		}

		approved, err := checker.IsApproved(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "APPROVAL_CHECK_FAILED",
				Message: "could not verify approval, try again later",
			})
		}

		if !approved {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PENDING_APPROVAL",
				Message: "account is awaiting HQ approval",
			})
		}

		return c.Next()
	}
}
