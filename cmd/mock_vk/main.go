package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"smm_manager/internal/pkg/mock_vk/handlers"
)

func main() {
	http.HandleFunc("/method/photos.getWallUploadServer", handlers.GetWallUploadServerHandler)
	http.HandleFunc("/upload", handlers.UploadHandler)
	http.HandleFunc("/method/photos.saveWallPhoto", handlers.SaveWallPhotoHandler)
	http.HandleFunc("/method/wall.post", handlers.WallPostHandler)
	http.HandleFunc("/method/groups.getMembers", handlers.GetMembersHandler)
	http.HandleFunc("/method/wall.get", handlers.WallGetHandler)

	http.HandleFunc("/v1/chat/completions", handlers.ChatCompletionsHandler)
	http.HandleFunc("/v1/images/generations", handlers.ImageGenerationsHandler)
	http.HandleFunc("/generated/", handlers.GeneratedImageHandler)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "8082"
	}

	fmt.Printf("Mock VK/OpenAI server запущен на порту %s\n", port)
	fmt.Println("Доступные эндпоинты:")
	fmt.Println("   POST /method/photos.getWallUploadServer")
	fmt.Println("   POST /upload")
	fmt.Println("   POST /method/photos.saveWallPhoto")
	fmt.Println("   POST /method/wall.post")
	fmt.Println("   POST /method/groups.getMembers")
	fmt.Println("   POST /method/wall.get")
	fmt.Println("   POST /v1/chat/completions")
	fmt.Println("   POST /v1/images/generations")
	fmt.Println("   GET  /health")

	log.Fatal(http.ListenAndServe(":"+port, nil))
}
