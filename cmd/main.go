package main

import (
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"smm_manager/internal/pkg/generation"
	session_storage "smm_manager/internal/pkg/session/postgres_storage"
	user_repository "smm_manager/internal/pkg/user/repository"
	"smm_manager/internal/pkg/vk"
	"smm_manager/internal/web"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found")
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	webPort := os.Getenv("WEB_PORT")
	if webPort == "" {
		webPort = "8080"
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	generator := generation.NewClient(generation.Config{
		APIKey:  openaiKey,
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Logger:  log,
	})
	platform := vk.NewClient(log, os.Getenv("VK_BASE_URL"))

	users := user_repository.NewPostgresStorage(db)
	sessions := session_storage.NewPostgresStorage(db)

	server := web.NewServer(log, generator, platform, users, sessions)
	if err := server.Run(webPort); err != nil {
		log.Fatalf("web server stopped: %v", err)
	}
}
