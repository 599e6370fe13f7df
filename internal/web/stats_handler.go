package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultStatsCount = 5

func statsCount(c *gin.Context) int {
	raw := c.Query("count")
	if raw == "" {
		return defaultStatsCount
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count <= 0 {
		return defaultStatsCount
	}
	return count
}

func (s *Server) handleVKStats(c *gin.Context) {
	creds, ok := s.vkCredentials(c)
	if !ok {
		return
	}

	posts, err := s.platform.GetRecentPostStats(c.Request.Context(), creds, statsCount(c))
	if err != nil {
		s.coreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (s *Server) handleVKStatsSummary(c *gin.Context) {
	creds, ok := s.vkCredentials(c)
	if !ok {
		return
	}

	stats, err := s.platform.GetGroupStats(c.Request.Context(), creds, statsCount(c))
	if err != nil {
		s.coreError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
