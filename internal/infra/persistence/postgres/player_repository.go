// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// playerRepository implements the domain.PlayerRepository interface.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository is the constructor for playerRepository.
func NewPlayerRepository(db *gorm.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

// Create persists a new player account.
func (repo *playerRepository) Create(ctx context.Context, player *entity.Player) error {
	playerM := fromPlayerDomain(player)

	if err := repo.db.WithContext(ctx).Create(playerM).Error; err != nil {
		// The unique indexes on email and username are the authoritative
		// duplicate check; application-level lookups only narrow the race.
		if isUniqueConstraintViolation(err) {
			return repository.ErrPlayerExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required player information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create player")
	}

	// Update the entity with generated values
	player.ID = playerM.ID
	player.CreatedAt = playerM.CreatedAt
	player.UpdatedAt = playerM.UpdatedAt

	return nil
}

// FindByID retrieves a single player by their unique ID.
func (repo *playerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Player, error) {
	var playerM model.PlayerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&playerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlayerNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPlayerDomain(&playerM), nil
}

// FindByEmail retrieves a single player by their email address.
func (repo *playerRepository) FindByEmail(ctx context.Context, email string) (*entity.Player, error) {
	var playerM model.PlayerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&playerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlayerNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPlayerDomain(&playerM), nil
}

// FindByEmailOrUsername retrieves a player matching either identifier.
func (repo *playerRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Player, error) {
	var playerM model.PlayerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ? OR username = ?", email, username).
		First(&playerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlayerNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPlayerDomain(&playerM), nil
}

// UpdatePassword replaces the player's password hash.
func (repo *playerRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlayerModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlayerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPlayerDomain converts a GORM PlayerModel to a domain Player entity.
func toPlayerDomain(data *model.PlayerModel) *entity.Player {
	if data == nil {
		return nil
	}

	return &entity.Player{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromPlayerDomain converts a domain Player entity to a GORM PlayerModel.
func fromPlayerDomain(data *entity.Player) *model.PlayerModel {
	if data == nil {
		return nil
	}

	return &model.PlayerModel{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
