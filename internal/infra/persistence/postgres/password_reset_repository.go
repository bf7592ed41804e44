package postgres

import (
	"context"
	"time"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// passwordResetRepository implements the domain.PasswordResetRepository interface.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

// Create persists a new ledger record for an issued reset token.
func (repo *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	resetM := fromPasswordResetDomain(reset)

	if err := repo.db.WithContext(ctx).Create(resetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid player reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset record")
	}

	// Update the entity with generated values
	reset.ID = resetM.ID
	reset.CreatedAt = resetM.CreatedAt

	return nil
}

// FindActiveByToken retrieves the ledger record for a token, filtered to
// unused, unexpired rows. Used and expired records are indistinguishable from
// missing ones on purpose.
func (repo *passwordResetRepository) FindActiveByToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	var resetM model.PasswordResetModel

	if err := repo.db.WithContext(ctx).
		Where("token = ? AND used = false AND expires_at > ?", token, time.Now()).
		First(&resetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPasswordResetDomain(&resetM), nil
}

// MarkUsed flips the used flag from false to true in a single conditional
// update. The WHERE clause on the flag makes the flip first-writer-wins; a
// transaction that loses the race sees zero affected rows.
func (repo *passwordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetModel{}).
		Where("id = ? AND used = false", id).
		Update("used", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark password reset used")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResetAlreadyUsed
	}

	return nil
}

// --- Mapper Functions ---

// toPasswordResetDomain converts a GORM PasswordResetModel to a domain PasswordReset entity.
func toPasswordResetDomain(data *model.PasswordResetModel) *entity.PasswordReset {
	if data == nil {
		return nil
	}

	return &entity.PasswordReset{
		ID:        data.ID,
		PlayerID:  data.PlayerID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}

// fromPasswordResetDomain converts a domain PasswordReset entity to a GORM PasswordResetModel.
func fromPasswordResetDomain(data *entity.PasswordReset) *model.PasswordResetModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetModel{
		ID:        data.ID,
		PlayerID:  data.PlayerID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}
