package db

import (
	"context"
	"errors"
	"time"

	"voltgate/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// GetBySlug resolves the external slug to a tenant. Soft-deleted workspaces
// are excluded by the default scope, so a retired slug resolves to nothing.
func (r *WorkspaceRepository) GetBySlug(ctx context.Context, slug string) (*domain.Workspace, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model WorkspaceModel
	err := r.db.WithContext(ctx).First(&model, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toWorkspace(model), nil
}

func (r *WorkspaceRepository) List(ctx context.Context) ([]domain.Workspace, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []WorkspaceModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Workspace, 0, len(models))
	for _, model := range models {
		out = append(out, *toWorkspace(model))
	}
	return out, nil
}

func (r *WorkspaceRepository) Create(ctx context.Context, workspace domain.Workspace) (*domain.Workspace, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := WorkspaceModel{
		ID:        workspace.ID,
		Slug:      workspace.Slug,
		Name:      workspace.Name,
		CreatedAt: workspace.CreatedAt,
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
	return toWorkspace(model), nil
}

func toWorkspace(model WorkspaceModel) *domain.Workspace {
	return &domain.Workspace{
		ID:        model.ID,
		Slug:      model.Slug,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}
