package repository

import (
	"smm_manager/internal/pkg/user/domain"
)

type UserRepository interface {
	CreateUser(username, passwordHash string) (int64, error)
	GetByUsername(username string) (*domain.User, error)
	GetByID(id int64) (*domain.User, error)
	UpdateVKSettings(id int64, apiToken, groupID string) error
}
