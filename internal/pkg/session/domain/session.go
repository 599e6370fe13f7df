package domain

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

type WebSession struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

func GenerateToken() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
