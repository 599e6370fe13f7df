package vk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// AssetReference — постоянная ссылка на сохраненную фотографию. Создается
// только после успешного прохождения всех трех шагов загрузки.
type AssetReference struct {
	OwnerID int
	AssetID int
}

// String сериализует ссылку в attachment-строку для wall.post,
// например "photo-100_42".
func (r AssetReference) String() string {
	return fmt.Sprintf("photo%d_%d", r.OwnerID, r.AssetID)
}

// Промежуточный результат загрузки. Действителен только до вызова
// photos.saveWallPhoto, дальше не переиспользуется.
type transientUpload struct {
	Photo  string `json:"photo"`
	Server int    `json:"server"`
	Hash   string `json:"hash"`
}

// UploadWallPhoto переносит фотографию с внешнего URL в хранилище VK.
//
// Три шага строго по порядку: получение сервера загрузки
// (photos.getWallUploadServer), скачивание байтов и пересылка их multipart-ом
// на полученный URL, сохранение (photos.saveWallPhoto). Общей транзакции у VK
// нет; при ошибке на любом шаге уже загруженный черновик просто бросается,
// компенсирующих вызовов API не существует.
func (c *Client) UploadWallPhoto(ctx context.Context, creds Credentials, imageURL string) (AssetReference, error) {
	uploadURL, err := c.getWallUploadServer(ctx, creds)
	if err != nil {
		return AssetReference{}, err
	}

	imageData, err := c.fetchImage(ctx, imageURL)
	if err != nil {
		return AssetReference{}, err
	}

	upload, err := c.forwardImage(ctx, uploadURL, imageData)
	if err != nil {
		return AssetReference{}, err
	}

	return c.saveWallPhoto(ctx, creds, upload)
}

func (c *Client) getWallUploadServer(ctx context.Context, creds Credentials) (string, error) {
	raw, apiErr, err := c.callMethod(ctx, "photos.getWallUploadServer", groupParams(creds))
	if err != nil {
		return "", &UploadTargetError{Message: err.Error()}
	}
	if apiErr != nil {
		return "", &UploadTargetError{Message: apiErr.text()}
	}

	var target struct {
		UploadURL string `json:"upload_url"`
	}
	if err := json.Unmarshal(raw, &target); err != nil || target.UploadURL == "" {
		return "", &UploadTargetError{Message: "response has no upload_url"}
	}
	return target.UploadURL, nil
}

func (c *Client) fetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, &SourceFetchError{Message: err.Error()}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &SourceFetchError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SourceFetchError{Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SourceFetchError{Message: err.Error()}
	}
	return imageData, nil
}

func (c *Client) forwardImage(ctx context.Context, uploadURL string, imageData []byte) (*transientUpload, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("photo", "image.jpg")
	if err != nil {
		return nil, &UploadError{Message: err.Error()}
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, &UploadError{Message: err.Error()}
	}
	if err := writer.Close(); err != nil {
		return nil, &UploadError{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &buf)
	if err != nil {
		return nil, &UploadError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UploadError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UploadError{Message: err.Error()}
	}

	upload := &transientUpload{}
	if err := json.Unmarshal(body, upload); err != nil {
		return nil, &UploadError{Message: "failed to parse upload response"}
	}
	if upload.Photo == "" || upload.Hash == "" {
		return nil, &UploadError{Message: "upload response has no photo data"}
	}
	return upload, nil
}

func (c *Client) saveWallPhoto(ctx context.Context, creds Credentials, upload *transientUpload) (AssetReference, error) {
	params := groupParams(creds)
	params.Set("photo", upload.Photo)
	params.Set("server", strconv.Itoa(upload.Server))
	params.Set("hash", upload.Hash)

	raw, apiErr, err := c.callMethod(ctx, "photos.saveWallPhoto", params)
	if err != nil {
		return AssetReference{}, &SaveError{Message: err.Error()}
	}
	if apiErr != nil {
		return AssetReference{}, &SaveError{Message: apiErr.text()}
	}

	var saved []struct {
		ID      int `json:"id"`
		OwnerID int `json:"owner_id"`
	}
	if err := json.Unmarshal(raw, &saved); err != nil {
		return AssetReference{}, &SaveError{Message: "failed to parse save response"}
	}
	if len(saved) == 0 {
		return AssetReference{}, &SaveError{Message: "save response is empty"}
	}

	return AssetReference{OwnerID: saved[0].OwnerID, AssetID: saved[0].ID}, nil
}
