package repository

import (
	"database/sql"

	_ "github.com/lib/pq"
	"smm_manager/internal/pkg/user/domain"
)

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (p *PostgresStorage) CreateUser(username, passwordHash string) (int64, error) {
	var id int64
	err := p.db.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, username, passwordHash).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (p *PostgresStorage) GetByUsername(username string) (*domain.User, error) {
	row := p.db.QueryRow(`
		SELECT id, username, password_hash, vk_api_token, vk_group_id, created_at
		FROM users
		WHERE username=$1
	`, username)
	return scanUser(row)
}

func (p *PostgresStorage) GetByID(id int64) (*domain.User, error) {
	row := p.db.QueryRow(`
		SELECT id, username, password_hash, vk_api_token, vk_group_id, created_at
		FROM users
		WHERE id=$1
	`, id)
	return scanUser(row)
}

func (p *PostgresStorage) UpdateVKSettings(id int64, apiToken, groupID string) error {
	_, err := p.db.Exec(`
		UPDATE users
		SET vk_api_token=$2, vk_group_id=$3
		WHERE id=$1
	`, id, apiToken, groupID)
	return err
}

func scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.VKAPIToken, &u.VKGroupID, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
