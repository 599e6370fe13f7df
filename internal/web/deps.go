package web

import (
	"context"

	session_domain "smm_manager/internal/pkg/session/domain"
	"smm_manager/internal/pkg/user/domain"
	"smm_manager/internal/pkg/vk"
)

type Generator interface {
	GenerateText(ctx context.Context, tone, topic string) (string, error)
	GenerateImageDescription(ctx context.Context, topic string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type VKGateway interface {
	PublishPost(ctx context.Context, creds vk.Credentials, message, imageURL string) (int, error)
	GetFollowerCount(ctx context.Context, creds vk.Credentials) (int, error)
	GetRecentPostStats(ctx context.Context, creds vk.Credentials, count int) ([]vk.PostRecord, error)
	GetGroupStats(ctx context.Context, creds vk.Credentials, postLimit int) (vk.GroupStats, error)
}

type UserStorage interface {
	CreateUser(username, passwordHash string) (int64, error)
	GetByUsername(username string) (*domain.User, error)
	GetByID(id int64) (*domain.User, error)
	UpdateVKSettings(id int64, apiToken, groupID string) error
}

type SessionStorage interface {
	SaveSession(session *session_domain.WebSession) error
	GetUserID(token string) (int64, error)
	DeleteSession(token string) error
}
