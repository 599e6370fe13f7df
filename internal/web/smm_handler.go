package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type postGeneratorRequest struct {
	Tone          string `json:"tone"`
	Topic         string `json:"topic"`
	GenerateImage bool   `json:"generate_image"`
	AutoPost      bool   `json:"auto_post"`
}

type postGeneratorResponse struct {
	PostContent string `json:"post_content"`
	ImageURL    string `json:"image_url,omitempty"`
	PostID      int    `json:"post_id,omitempty"`
}

// handlePostGenerator генерирует текст поста, при generate_image — еще и
// картинку, при auto_post — публикует результат в группу VK пользователя.
// Ошибка публикации не деградирует до поста без картинки: либо весь пост,
// либо ошибка пользователю.
func (s *Server) handlePostGenerator(c *gin.Context) {
	var req postGeneratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	if req.Tone == "" || req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tone and topic are required"})
		return
	}

	ctx := c.Request.Context()

	postContent, err := s.generator.GenerateText(ctx, req.Tone, req.Topic)
	if err != nil {
		s.coreError(c, err)
		return
	}

	result := postGeneratorResponse{PostContent: postContent}

	if req.GenerateImage {
		imagePrompt, err := s.generator.GenerateImageDescription(ctx, req.Topic)
		if err != nil {
			s.coreError(c, err)
			return
		}
		imageURL, err := s.generator.GenerateImage(ctx, imagePrompt)
		if err != nil {
			s.coreError(c, err)
			return
		}
		result.ImageURL = imageURL
	}

	if req.AutoPost {
		creds, ok := s.vkCredentials(c)
		if !ok {
			return
		}
		postID, err := s.platform.PublishPost(ctx, creds, result.PostContent, result.ImageURL)
		if err != nil {
			s.coreError(c, err)
			return
		}
		result.PostID = postID
	}

	c.JSON(http.StatusOK, result)
}
