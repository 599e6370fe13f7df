package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	VKAPIToken   string    `json:"-"`
	VKGroupID    string    `json:"vk_group_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasVKSettings сообщает, заполнил ли пользователь настройки VK.
// Без токена и ID группы публикация и статистика недоступны.
func (u *User) HasVKSettings() bool {
	return u.VKAPIToken != "" && u.VKGroupID != ""
}
