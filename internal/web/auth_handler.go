package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"smm_manager/internal/pkg/session/domain"
)

const (
	sessionCookie  = "session_token"
	sessionTTL     = 24 * time.Hour
	cookieMaxAge   = int(sessionTTL / time.Second)
	minUsernameLen = 4
	maxUsernameLen = 100
	minPasswordLen = 8
	maxPasswordLen = 80
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	if len(req.Username) < minUsernameLen || len(req.Username) > maxUsernameLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username must be 4-100 characters"})
		return
	}
	if len(req.Password) < minPasswordLen || len(req.Password) > maxPasswordLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be 8-80 characters"})
		return
	}

	existing, err := s.users.GetByUsername(req.Username)
	if err != nil {
		s.internalError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "username is already taken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.internalError(c, err)
		return
	}

	id, err := s.users.CreateUser(req.Username, string(hash))
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "username": req.Username})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		s.internalError(c, err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := domain.GenerateToken()
	if err != nil {
		s.internalError(c, err)
		return
	}

	err = s.sessions.SaveSession(&domain.WebSession{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	})
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.SetCookie(sessionCookie, token, cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

func (s *Server) handleLogout(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err == nil && token != "" {
		if err := s.sessions.DeleteSession(token); err != nil {
			s.log.WithError(err).Error("failed to delete session")
		}
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
