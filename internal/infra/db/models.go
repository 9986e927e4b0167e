package db

import (
	"time"

	"gorm.io/gorm"
)

// Soft deletes use gorm.DeletedAt so default scopes exclude deleted rows:
// a soft-deleted membership or workspace is invisible to every lookup the
// verifiers perform.

type UserModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string
	PasswordHash string         `gorm:"not null"`
	SuperAdmin   bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time      `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string { return "users" }

// WorkspaceModel keeps the unique index on slug across soft deletes, so a
// slug is never reattached to a different tenant.
type WorkspaceModel struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	Slug      string         `gorm:"uniqueIndex;not null"`
	Name      string         `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (WorkspaceModel) TableName() string { return "workspaces" }

type MembershipModel struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	WorkspaceID string         `gorm:"type:uuid;index:idx_membership_ws_user;not null"`
	UserID      string         `gorm:"type:uuid;index:idx_membership_ws_user;not null"`
	Role        string         `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (MembershipModel) TableName() string { return "memberships" }

type EndUserModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string
	PasswordHash string         `gorm:"not null"`
	CreatedAt    time.Time      `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (EndUserModel) TableName() string { return "end_users" }

type ChargerModel struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	WorkspaceID string    `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Status      string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (ChargerModel) TableName() string { return "chargers" }
