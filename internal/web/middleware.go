package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

func (s *Server) requireAuth(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	userID, err := s.sessions.GetUserID(token)
	if err != nil {
		s.log.WithError(err).Error("failed to look up session")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if userID == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.log.WithError(err).Error("internal error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
