package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	session_domain "smm_manager/internal/pkg/session/domain"
	"smm_manager/internal/pkg/user/domain"
	"smm_manager/internal/pkg/vk"
)

type fakeGenerator struct {
	text     string
	desc     string
	imageURL string
	textErr  error
	descErr  error
	imageErr error
	calls    []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, tone, topic string) (string, error) {
	f.calls = append(f.calls, "text")
	return f.text, f.textErr
}

func (f *fakeGenerator) GenerateImageDescription(_ context.Context, topic string) (string, error) {
	f.calls = append(f.calls, "description")
	return f.desc, f.descErr
}

func (f *fakeGenerator) GenerateImage(_ context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, "image")
	return f.imageURL, f.imageErr
}

type publishCall struct {
	creds    vk.Credentials
	message  string
	imageURL string
}

type statsCall struct {
	creds vk.Credentials
	count int
}

type fakeVK struct {
	postID      int
	publishErr  error
	publishes   []publishCall
	followers   int
	followerErr error
	posts       []vk.PostRecord
	postsErr    error
	statsCalls  []statsCall
}

func (f *fakeVK) PublishPost(_ context.Context, creds vk.Credentials, message, imageURL string) (int, error) {
	f.publishes = append(f.publishes, publishCall{creds: creds, message: message, imageURL: imageURL})
	if f.publishErr != nil {
		return 0, f.publishErr
	}
	return f.postID, nil
}

func (f *fakeVK) GetFollowerCount(_ context.Context, creds vk.Credentials) (int, error) {
	return f.followers, f.followerErr
}

func (f *fakeVK) GetRecentPostStats(_ context.Context, creds vk.Credentials, count int) ([]vk.PostRecord, error) {
	f.statsCalls = append(f.statsCalls, statsCall{creds: creds, count: count})
	return f.posts, f.postsErr
}

func (f *fakeVK) GetGroupStats(ctx context.Context, creds vk.Credentials, postLimit int) (vk.GroupStats, error) {
	if f.followerErr != nil {
		return vk.GroupStats{}, f.followerErr
	}
	posts, err := f.GetRecentPostStats(ctx, creds, postLimit)
	if err != nil {
		return vk.GroupStats{}, err
	}
	return vk.GroupStats{FollowerCount: f.followers, RecentPosts: posts}, nil
}

type vkUpdate struct {
	id      int64
	token   string
	groupID string
}

type fakeUsers struct {
	byID    map[int64]*domain.User
	nextID  int64
	updates []vkUpdate
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[int64]*domain.User{}, nextID: 1}
}

func (f *fakeUsers) CreateUser(username, passwordHash string) (int64, error) {
	id := f.nextID
	f.nextID++
	f.byID[id] = &domain.User{ID: id, Username: username, PasswordHash: passwordHash}
	return id, nil
}

func (f *fakeUsers) GetByUsername(username string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByID(id int64) (*domain.User, error) {
	return f.byID[id], nil
}

func (f *fakeUsers) UpdateVKSettings(id int64, apiToken, groupID string) error {
	f.updates = append(f.updates, vkUpdate{id: id, token: apiToken, groupID: groupID})
	if u, ok := f.byID[id]; ok {
		u.VKAPIToken = apiToken
		u.VKGroupID = groupID
	}
	return nil
}

type fakeSessions struct {
	byToken map[string]int64
	saved   []*session_domain.WebSession
	deleted []string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byToken: map[string]int64{}}
}

func (f *fakeSessions) SaveSession(s *session_domain.WebSession) error {
	f.saved = append(f.saved, s)
	f.byToken[s.Token] = s.UserID
	return nil
}

func (f *fakeSessions) GetUserID(token string) (int64, error) {
	return f.byToken[token], nil
}

func (f *fakeSessions) DeleteSession(token string) error {
	f.deleted = append(f.deleted, token)
	delete(f.byToken, token)
	return nil
}

type harness struct {
	server    *Server
	generator *fakeGenerator
	platform  *fakeVK
	users     *fakeUsers
	sessions  *fakeSessions
}

func setupServer(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	h := &harness{
		generator: &fakeGenerator{},
		platform:  &fakeVK{},
		users:     newFakeUsers(),
		sessions:  newFakeSessions(),
	}
	h.server = NewServer(log, h.generator, h.platform, h.users, h.sessions)
	return h
}

// seedUser создает пользователя с валидной сессией и возвращает его ID.
func (h *harness) seedUser(username, vkToken, vkGroupID string) int64 {
	id := h.users.nextID
	h.users.nextID++
	h.users.byID[id] = &domain.User{
		ID:         id,
		Username:   username,
		VKAPIToken: vkToken,
		VKGroupID:  vkGroupID,
	}
	h.sessions.byToken["session-"+username] = id
	return id
}

func (h *harness) do(method, path string, payload interface{}, sessionToken string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: sessionToken})
	}

	resp := httptest.NewRecorder()
	h.server.Router().ServeHTTP(resp, req)
	return resp
}
