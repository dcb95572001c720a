// Package accountrepo maps accounts to the users table.
package accountrepo

import (
	"time"

	"foodorder/internal/core/domain/model/account"
)

// UserDTO is one row of the users table.
type UserDTO struct {
	Username     string `gorm:"primaryKey;size:64"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:16;not null"`
	IsOnline     bool   `gorm:"not null;default:false"`
	IsAvailable  bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(a *account.Account) UserDTO {
	return UserDTO{
		Username:     a.Username(),
		PasswordHash: a.Password().String(),
		Role:         a.Role().String(),
		IsOnline:     a.IsOnline(),
		IsAvailable:  a.IsAvailable(),
		CreatedAt:    a.RegisteredAt(),
	}
}

func toDomain(dto UserDTO) (*account.Account, error) {
	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	hash, err := account.RestorePasswordHash(dto.PasswordHash)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(dto.Username, hash, role, dto.IsOnline, dto.IsAvailable, dto.CreatedAt)
}
