package vk

import (
	"context"
	"encoding/json"
)

// PublishPost публикует пост на стене группы и возвращает ID нового поста.
//
// Если задан imageURL, сначала выполняется пайплайн загрузки фотографии;
// любая его ошибка отменяет публикацию целиком — wall.post не вызывается,
// отката до поста без картинки нет. Кто хочет пост без картинки, передает
// пустой imageURL.
func (c *Client) PublishPost(ctx context.Context, creds Credentials, message, imageURL string) (int, error) {
	params := ownerParams(creds)
	params.Set("from_group", "1")
	params.Set("message", message)

	if imageURL != "" {
		ref, err := c.UploadWallPhoto(ctx, creds, imageURL)
		if err != nil {
			return 0, err
		}
		params.Set("attachments", ref.String())
	}

	raw, apiErr, err := c.callMethod(ctx, "wall.post", params)
	if err != nil {
		return 0, &PublishError{Message: err.Error()}
	}
	if apiErr != nil {
		return 0, &PublishError{Message: apiErr.text()}
	}

	var posted struct {
		PostID int `json:"post_id"`
	}
	if err := json.Unmarshal(raw, &posted); err != nil {
		return 0, &PublishError{Message: "failed to parse wall.post response"}
	}
	return posted.PostID, nil
}
