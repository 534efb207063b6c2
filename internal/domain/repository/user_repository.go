package repository

import (
	"context"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
)

// UserFilter narrows List results. Zero values mean "no filter".
type UserFilter struct {
	Role        entity.Role
	BranchID    string
	PendingOnly bool // approved = false
	Limit       int
	Offset      int
}

// UserRepository is the persistence port for User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// UpdateApproval flips the approval flag and stamps actor/time in one statement.
	UpdateApproval(ctx context.Context, userID, actorID string, approved bool, at time.Time) error
	List(ctx context.Context, f UserFilter) ([]*entity.User, error)
}
