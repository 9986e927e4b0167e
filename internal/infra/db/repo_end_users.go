package db

import (
	"context"
	"errors"
	"time"

	"voltgate/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EndUserRepository struct {
	db *gorm.DB
}

func NewEndUserRepository(db *gorm.DB) *EndUserRepository {
	return &EndUserRepository{db: db}
}

func (r *EndUserRepository) GetByID(ctx context.Context, endUserID string) (*domain.EndUser, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model EndUserModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", endUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toEndUser(model), nil
}

func (r *EndUserRepository) GetByEmail(ctx context.Context, email string) (*domain.EndUser, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model EndUserModel
	err := r.db.WithContext(ctx).First(&model, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toEndUser(model), nil
}

func (r *EndUserRepository) Create(ctx context.Context, endUser domain.EndUser) (*domain.EndUser, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := EndUserModel{
		ID:           endUser.ID,
		Email:        endUser.Email,
		Name:         endUser.Name,
		PasswordHash: endUser.PasswordHash,
		CreatedAt:    endUser.CreatedAt,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return toEndUser(model), nil
}

func toEndUser(model EndUserModel) *domain.EndUser {
	return &domain.EndUser{
		ID:           model.ID,
		Email:        model.Email,
		Name:         model.Name,
		PasswordHash: model.PasswordHash,
		CreatedAt:    model.CreatedAt,
	}
}
