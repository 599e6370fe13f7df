package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"smm_manager/internal/pkg/generation"
	"smm_manager/internal/pkg/vk"
)

// coreError переводит типизированные ошибки ядра в ответ пользователю.
// Здесь единственное место, где ошибки превращаются в видимый текст;
// ядро только помечает, какой именно шаг отказал.
func (s *Server) coreError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	var message string

	var genErr *generation.GenerationError
	var targetErr *vk.UploadTargetError
	var fetchErr *vk.SourceFetchError
	var uploadErr *vk.UploadError
	var saveErr *vk.SaveError
	var publishErr *vk.PublishError
	var statsErr *vk.StatsError
	var malformedErr *vk.MalformedResponseError

	switch {
	case errors.As(err, &genErr):
		message = "content generation failed: " + genErr.Message
	case errors.As(err, &targetErr):
		message = "VK did not provide an upload server: " + targetErr.Message
	case errors.As(err, &fetchErr):
		message = "failed to download the generated image: " + fetchErr.Message
	case errors.As(err, &uploadErr):
		message = "failed to upload the image to VK: " + uploadErr.Message
	case errors.As(err, &saveErr):
		message = "failed to save the uploaded photo: " + saveErr.Message
	case errors.As(err, &publishErr):
		message = "VK rejected the post: " + publishErr.Message
	case errors.As(err, &statsErr):
		message = "VK statistics are unavailable: " + statsErr.Message
	case errors.As(err, &malformedErr):
		message = "VK returned an unexpected response: " + malformedErr.Message
	default:
		s.internalError(c, err)
		return
	}

	s.log.WithError(err).Warn("core operation failed")
	c.JSON(status, gin.H{"error": message})
}
