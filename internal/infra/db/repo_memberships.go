package db

import (
	"context"
	"errors"
	"time"

	"voltgate/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Get returns the live membership for (user, workspace). Soft-deleted rows
// are excluded by the default scope: a revoked membership is exactly "not a
// member". A row whose stored role does not parse never grants access.
func (r *MembershipRepository) Get(ctx context.Context, userID, workspaceID string) (*domain.Membership, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model MembershipModel
	err := r.db.WithContext(ctx).
		First(&model, "user_id = ? AND workspace_id = ?", userID, workspaceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	role, ok := domain.ParseRole(model.Role)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Membership{
		ID:          model.ID,
		WorkspaceID: model.WorkspaceID,
		UserID:      model.UserID,
		Role:        role,
		CreatedAt:   model.CreatedAt,
	}, nil
}

func (r *MembershipRepository) Create(ctx context.Context, membership domain.Membership) (*domain.Membership, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := MembershipModel{
		ID:          membership.ID,
		WorkspaceID: membership.WorkspaceID,
		UserID:      membership.UserID,
		Role:        membership.Role.String(),
		CreatedAt:   membership.CreatedAt,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	membership.ID = model.ID
	membership.CreatedAt = model.CreatedAt
	return &membership, nil
}

// Revoke soft-deletes the membership. Subsequent Get calls for the pair fail
// with domain.ErrNotFound immediately.
func (r *MembershipRepository) Revoke(ctx context.Context, userID, workspaceID string) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND workspace_id = ?", userID, workspaceID).
		Delete(&MembershipModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
