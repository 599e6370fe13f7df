package web

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterSuccess(t *testing.T) {
	h := setupServer(t)

	resp := h.do(http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "password123",
	}, "")

	require.Equal(t, http.StatusCreated, resp.Code)

	user, err := h.users.GetByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := setupServer(t)
	h.seedUser("alice", "", "")

	resp := h.do(http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "password123",
	}, "")

	require.Equal(t, http.StatusConflict, resp.Code)
}

func TestRegisterValidation(t *testing.T) {
	h := setupServer(t)

	resp := h.do(http.MethodPost, "/register", map[string]string{
		"username": "bob",
		"password": "short",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = h.do(http.MethodPost, "/register", map[string]string{
		"username": "ab",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLoginSuccess(t *testing.T) {
	h := setupServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	id, err := h.users.CreateUser("alice", string(hash))
	require.NoError(t, err)

	resp := h.do(http.MethodPost, "/login", map[string]string{
		"username": "alice",
		"password": "password123",
	}, "")

	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, h.sessions.saved, 1)
	require.Equal(t, id, h.sessions.saved[0].UserID)

	cookies := resp.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, sessionCookie, cookies[0].Name)
	require.Equal(t, h.sessions.saved[0].Token, cookies[0].Value)
}

func TestLoginWrongPassword(t *testing.T) {
	h := setupServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = h.users.CreateUser("alice", string(hash))
	require.NoError(t, err)

	resp := h.do(http.MethodPost, "/login", map[string]string{
		"username": "alice",
		"password": "wrong-password",
	}, "")

	require.Equal(t, http.StatusUnauthorized, resp.Code)
	require.Empty(t, h.sessions.saved)
}

func TestLogoutDeletesSession(t *testing.T) {
	h := setupServer(t)
	h.seedUser("alice", "", "")

	resp := h.do(http.MethodPost, "/logout", nil, "session-alice")

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, []string{"session-alice"}, h.sessions.deleted)
}

func TestRequireAuth(t *testing.T) {
	h := setupServer(t)

	resp := h.do(http.MethodGet, "/settings", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = h.do(http.MethodGet, "/settings", nil, "unknown-token")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSettingsRoundTrip(t *testing.T) {
	h := setupServer(t)
	id := h.seedUser("alice", "", "")

	resp := h.do(http.MethodPost, "/settings", map[string]string{
		"vk_api_token": "vk-token",
		"vk_group_id":  "42",
	}, "session-alice")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, []vkUpdate{{id: id, token: "vk-token", groupID: "42"}}, h.users.updates)

	resp = h.do(http.MethodGet, "/settings", nil, "session-alice")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"vk_group_id":"42"`)
	require.Contains(t, resp.Body.String(), `"vk_configured":true`)
	require.NotContains(t, resp.Body.String(), "vk-token")
}

func TestSettingsValidation(t *testing.T) {
	h := setupServer(t)
	h.seedUser("alice", "", "")

	resp := h.do(http.MethodPost, "/settings", map[string]string{
		"vk_api_token": "",
		"vk_group_id":  "42",
	}, "session-alice")
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
