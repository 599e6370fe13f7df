package postgres_storage

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"smm_manager/internal/pkg/session/domain"
)

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (p *PostgresStorage) SaveSession(session *domain.WebSession) error {
	_, err := p.db.Exec(`
		INSERT INTO web_sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE
		SET user_id=$2, expires_at=$3
	`, session.Token, session.UserID, session.ExpiresAt)
	return err
}

// GetUserID возвращает ID пользователя по токену сессии.
// Для неизвестного или просроченного токена возвращается 0 без ошибки.
func (p *PostgresStorage) GetUserID(token string) (int64, error) {
	row := p.db.QueryRow(`
		SELECT user_id, expires_at
		FROM web_sessions
		WHERE token=$1
	`, token)

	var userID int64
	var expiresAt time.Time
	err := row.Scan(&userID, &expiresAt)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if time.Now().After(expiresAt) {
		return 0, nil
	}
	return userID, nil
}

func (p *PostgresStorage) DeleteSession(token string) error {
	_, err := p.db.Exec(`DELETE FROM web_sessions WHERE token=$1`, token)
	return err
}

func (p *PostgresStorage) CleanupExpiredSessions() error {
	_, err := p.db.Exec(`DELETE FROM web_sessions WHERE expires_at < NOW()`)
	return err
}
