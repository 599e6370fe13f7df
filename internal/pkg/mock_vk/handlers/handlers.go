package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
)

// Заглушки методов VK API и эндпоинтов OpenAI, которые потребляет приложение.
// Состояние не хранится, ответы генерируются на лету.

func GetWallUploadServerHandler(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("access_token") == "" {
		sendVKError(w, 5, "User authorization failed: no access_token passed.")
		return
	}
	if r.FormValue("group_id") == "" {
		sendVKError(w, 100, "One of the parameters specified was missing or invalid: group_id")
		return
	}

	sendJSON(w, map[string]interface{}{
		"response": map[string]interface{}{
			"upload_url": fmt.Sprintf("http://%s/upload", r.Host),
			"album_id":   -14,
			"user_id":    0,
		},
	})
}

func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "expected multipart body", http.StatusBadRequest)
		return
	}
	if _, _, err := r.FormFile("photo"); err != nil {
		http.Error(w, "photo file is required", http.StatusBadRequest)
		return
	}

	sendJSON(w, map[string]interface{}{
		"server": 600000 + rand.Intn(1000),
		"photo":  fmt.Sprintf("[{\"photo\":\"%d\"}]", rand.Intn(1000000)),
		"hash":   fmt.Sprintf("%x", rand.Int63()),
	})
}

func SaveWallPhotoHandler(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("photo") == "" || r.FormValue("server") == "" || r.FormValue("hash") == "" {
		sendVKError(w, 121, "Invalid hash")
		return
	}

	groupID := r.FormValue("group_id")
	sendJSON(w, map[string]interface{}{
		"response": []map[string]interface{}{
			{
				"id":       rand.Intn(100000),
				"owner_id": ownerID(groupID),
				"album_id": -14,
			},
		},
	})
}

func WallPostHandler(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("message") == "" && r.FormValue("attachments") == "" {
		sendVKError(w, 100, "One of the parameters specified was missing or invalid: message is empty")
		return
	}

	sendJSON(w, map[string]interface{}{
		"response": map[string]interface{}{
			"post_id": rand.Intn(10000),
		},
	})
}

func GetMembersHandler(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, map[string]interface{}{
		"response": map[string]interface{}{
			"count": 1000 + rand.Intn(9000),
			"items": []int{},
		},
	})
}

func WallGetHandler(w http.ResponseWriter, r *http.Request) {
	count := 5
	fmt.Sscanf(r.FormValue("count"), "%d", &count)

	items := make([]map[string]interface{}, 0, count)
	for i := 0; i < count; i++ {
		item := map[string]interface{}{
			"id":    1000 - i,
			"date":  1700000000 - i*86400,
			"likes": map[string]interface{}{"count": rand.Intn(500)},
		}
		// У части постов VK не отдает просмотры
		if i%4 != 3 {
			item["views"] = map[string]interface{}{"count": rand.Intn(5000)}
		}
		items = append(items, item)
	}

	sendJSON(w, map[string]interface{}{
		"response": map[string]interface{}{
			"count": count,
			"items": items,
		},
	})
}

func ChatCompletionsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	prompt := ""
	if len(req.Messages) > 0 {
		prompt = req.Messages[len(req.Messages)-1].Content
	}

	sendJSON(w, map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": fmt.Sprintf("Сгенерированный текст по запросу: %s", prompt),
				},
				"finish_reason": "stop",
			},
		},
	})
}

func ImageGenerationsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}

	sendJSON(w, map[string]interface{}{
		"data": []map[string]interface{}{
			{"url": fmt.Sprintf("http://%s/generated/%d.jpg", r.Host, rand.Intn(100000))},
		},
	})
}

func GeneratedImageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/jpeg")
	// Валидный заголовок JPEG, дальше мусор — клиентам важны только байты
	w.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	w.Write([]byte("mock image payload"))
}

func ownerID(groupID string) int {
	id := 0
	fmt.Sscanf(groupID, "%d", &id)
	if id == 0 {
		id = rand.Intn(100000)
	}
	return -id
}

func sendJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func sendVKError(w http.ResponseWriter, code int, message string) {
	sendJSON(w, map[string]interface{}{
		"error": map[string]interface{}{
			"error_code": code,
			"error_msg":  message,
		},
	})
}
