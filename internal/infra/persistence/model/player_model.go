// Package model contains the GORM models mirroring the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PlayerModel mirrors the 'players' table. Email and username each carry a
// unique index; the duplicate-account guarantee lives in the schema, not in
// application-level checks.
type PlayerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlayerModel) TableName() string {
	return "players"
}
