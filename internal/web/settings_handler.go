package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"smm_manager/internal/pkg/vk"
)

type settingsRequest struct {
	VKAPIToken string `json:"vk_api_token"`
	VKGroupID  string `json:"vk_group_id"`
}

func (s *Server) handleGetSettings(c *gin.Context) {
	user, err := s.users.GetByID(currentUserID(c))
	if err != nil {
		s.internalError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":      user.Username,
		"vk_group_id":   user.VKGroupID,
		"vk_configured": user.HasVKSettings(),
	})
}

func (s *Server) handleUpdateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	if req.VKAPIToken == "" || req.VKGroupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vk_api_token and vk_group_id are required"})
		return
	}

	if err := s.users.UpdateVKSettings(currentUserID(c), req.VKAPIToken, req.VKGroupID); err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "settings saved"})
}

// vkCredentials достает сохраненные настройки VK текущего пользователя.
// Если настроек нет, сам отвечает 409 и возвращает ok=false.
func (s *Server) vkCredentials(c *gin.Context) (vk.Credentials, bool) {
	user, err := s.users.GetByID(currentUserID(c))
	if err != nil {
		s.internalError(c, err)
		return vk.Credentials{}, false
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return vk.Credentials{}, false
	}
	if !user.HasVKSettings() {
		c.JSON(http.StatusConflict, gin.H{"error": "VK settings are not configured"})
		return vk.Credentials{}, false
	}
	return vk.Credentials{AccessToken: user.VKAPIToken, GroupID: user.VKGroupID}, true
}
