package accountrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add inserts a new account, returning account.ErrUsernameTaken when the
// username is already stored.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("username = ?", aggregate.Username()).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return account.ErrUsernameTaken
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Update stores the presence flags. Credentials and role never change after signup.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// A map keeps false values, which Updates with a struct would skip.
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("username = ?", aggregate.Username()).
		Updates(map[string]any{
			"is_online":    aggregate.IsOnline(),
			"is_available": aggregate.IsAvailable(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", aggregate.Username())
	}
	return nil
}

func (r *GormAccountRepository) Delete(ctx context.Context, username string) error {
	return r.db.WithContext(ctx).Where("username = ?", username).Delete(&UserDTO{}).Error
}

func (r *GormAccountRepository) Get(ctx context.Context, username string) (*account.Account, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns accounts in registration order.
func (r *GormAccountRepository) GetAll(ctx context.Context) ([]*account.Account, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("created_at, username").Find(&dtos).Error; err != nil {
		return nil, err
	}

	accounts := make([]*account.Account, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
