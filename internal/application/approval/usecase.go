package approval

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// UseCase flips the approval gate on user profiles. Route-level RBAC already
// restricts callers to HQ; actorID identifies the deciding admin for the
// audit trail.
type UseCase struct {
	userRepo repository.UserRepository
	logRepo  repository.ApprovalLogRepository
}

// New builds the approval usecase.
func New(userRepo repository.UserRepository, logRepo repository.ApprovalLogRepository) *UseCase {
	return &UseCase{userRepo: userRepo, logRepo: logRepo}
}

// SetApproval updates one user's approval flag, stamping approver and time,
// and appends an audit record. Approval refuses profiles that would violate
// the role/branch invariant (HQ with a branch, OWNER/STAFF without one).
// Rejection never deletes the profile; the user simply stays gated.
func (uc *UseCase) SetApproval(ctx context.Context, actorID, userID string, approved bool, reason string) (*dto.ApprovalResult, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if approved {
		if user.Role.NeedsBranch() && user.BranchID == nil {
			return nil, domain.ErrConflict
		}
		if !user.Role.NeedsBranch() && user.BranchID != nil {
			return nil, domain.ErrConflict
		}
	}

	now := time.Now()
	if err := uc.userRepo.UpdateApproval(ctx, userID, actorID, approved, now); err != nil {
		return nil, err
	}
	if err := uc.logRepo.Create(ctx, &entity.ApprovalLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		ActorID:   actorID,
		Approved:  approved,
		Reason:    reason,
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}
	return &dto.ApprovalResult{UserID: userID, OK: true}, nil
}

// SetApprovalBatch applies SetApproval to each ID independently. One user's
// failure is reported in its slot and never blocks the rest; there is no
// cross-user transaction because the entities are independent.
func (uc *UseCase) SetApprovalBatch(ctx context.Context, actorID string, userIDs []string, approved bool, reason string) []dto.ApprovalResult {
	results := make([]dto.ApprovalResult, 0, len(userIDs))
	for _, id := range userIDs {
		if _, err := uc.SetApproval(ctx, actorID, id, approved, reason); err != nil {
			results = append(results, dto.ApprovalResult{UserID: id, OK: false, Error: err.Error()})
			continue
		}
		results = append(results, dto.ApprovalResult{UserID: id, OK: true})
	}
	return results
}

// History returns the append-only decision trail for one user.
func (uc *UseCase) History(ctx context.Context, userID string, page dto.PageRequest) ([]dto.ApprovalLogResponse, error) {
	page.DefaultPage()
	logs, err := uc.logRepo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApprovalLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ApprovalLogResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			ActorID:   l.ActorID,
			Approved:  l.Approved,
			Reason:    l.Reason,
			CreatedAt: l.CreatedAt,
		})
	}
	return out, nil
}
