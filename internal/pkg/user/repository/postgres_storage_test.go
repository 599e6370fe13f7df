package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, password_hash)`)).
		WithArgs("alice", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	storage := NewPostgresStorage(db)
	id, err := storage.CreateUser("alice", "hash")
	require.NoError(t, err)
	require.Equal(t, int64(3), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "vk_api_token", "vk_group_id", "created_at"}).
		AddRow(int64(3), "alice", "hash", "vk-token", "42", createdAt)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users`)).
		WithArgs("alice").
		WillReturnRows(rows)

	storage := NewPostgresStorage(db)
	user, err := storage.GetByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, int64(3), user.ID)
	require.Equal(t, "vk-token", user.VKAPIToken)
	require.Equal(t, "42", user.VKGroupID)
	require.True(t, user.HasVKSettings())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsernameNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "vk_api_token", "vk_group_id", "created_at"}))

	storage := NewPostgresStorage(db)
	user, err := storage.GetByUsername("ghost")
	require.NoError(t, err)
	require.Nil(t, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVKSettings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users`)).
		WithArgs(int64(3), "new-token", "99").
		WillReturnResult(sqlmock.NewResult(0, 1))

	storage := NewPostgresStorage(db)
	require.NoError(t, storage.UpdateVKSettings(3, "new-token", "99"))
	require.NoError(t, mock.ExpectationsWereMet())
}
