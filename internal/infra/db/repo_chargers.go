package db

import (
	"context"
	"time"

	"voltgate/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChargerRepository struct {
	db *gorm.DB
}

func NewChargerRepository(db *gorm.DB) *ChargerRepository {
	return &ChargerRepository{db: db}
}

// All charger queries are scoped by the internal workspace ID handed out by
// the workspace verifier, never by a request-supplied slug.
func (r *ChargerRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Charger, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []ChargerModel
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Charger, 0, len(models))
	for _, model := range models {
		out = append(out, toCharger(model))
	}
	return out, nil
}

func (r *ChargerRepository) Create(ctx context.Context, charger domain.Charger) (*domain.Charger, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	now := time.Now().UTC()
	model := ChargerModel{
		ID:          charger.ID,
		WorkspaceID: charger.WorkspaceID,
		Name:        charger.Name,
		Status:      string(charger.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	if model.Status == "" {
		model.Status = string(domain.ChargerOffline)
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	out := toCharger(model)
	return &out, nil
}

func (r *ChargerRepository) UpdateStatus(ctx context.Context, chargerID string, status domain.ChargerStatus) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).
		Model(&ChargerModel{}).
		Where("id = ?", chargerID).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toCharger(model ChargerModel) domain.Charger {
	status, ok := domain.ParseChargerStatus(model.Status)
	if !ok {
		status = domain.ChargerOffline
	}
	return domain.Charger{
		ID:          model.ID,
		WorkspaceID: model.WorkspaceID,
		Name:        model.Name,
		Status:      status,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
