package vk

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

// VK сам не отдает больше 100 постов за один wall.get.
const defaultPostCount = 100

type PostRecord struct {
	PostID      int       `json:"post_id"`
	LikeCount   int       `json:"likes"`
	ViewCount   int       `json:"views"`
	PublishedAt time.Time `json:"date"`
}

type GroupStats struct {
	FollowerCount int          `json:"follower_count"`
	RecentPosts   []PostRecord `json:"recent_posts"`
}

// GetFollowerCount возвращает число подписчиков группы.
func (c *Client) GetFollowerCount(ctx context.Context, creds Credentials) (int, error) {
	raw, apiErr, err := c.callMethod(ctx, "groups.getMembers", groupParams(creds))
	if err != nil {
		return 0, &StatsError{Message: err.Error()}
	}
	if apiErr != nil {
		return 0, &StatsError{Message: apiErr.text()}
	}

	var members struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(raw, &members); err != nil {
		return 0, &MalformedResponseError{Message: "failed to parse groups.getMembers response"}
	}
	return members.Count, nil
}

type wallItem struct {
	ID   *int  `json:"id"`
	Date int64 `json:"date"`
	Likes *struct {
		Count int `json:"count"`
	} `json:"likes"`
	Views *struct {
		Count int `json:"count"`
	} `json:"views"`
}

// GetRecentPostStats возвращает лайки и просмотры последних count постов
// в исходном порядке платформы (от новых к старым).
//
// Пост без поля views получает ViewCount 0 — это штатная ситуация, VK не
// отдает просмотры для старых постов. Пост без id или likes означает, что
// ответ сломан целиком: частичного результата нет, весь вызов завершается
// ошибкой MalformedResponseError.
func (c *Client) GetRecentPostStats(ctx context.Context, creds Credentials, count int) ([]PostRecord, error) {
	if count <= 0 {
		count = defaultPostCount
	}

	params := ownerParams(creds)
	params.Set("count", strconv.Itoa(count))

	raw, apiErr, err := c.callMethod(ctx, "wall.get", params)
	if err != nil {
		return nil, &StatsError{Message: err.Error()}
	}
	if apiErr != nil {
		return nil, &StatsError{Message: apiErr.text()}
	}

	var wall struct {
		Items []wallItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &wall); err != nil {
		return nil, &MalformedResponseError{Message: "failed to parse wall.get response"}
	}

	items := wall.Items
	if len(items) > count {
		items = items[:count]
	}

	records := make([]PostRecord, 0, len(items))
	for _, item := range items {
		if item.ID == nil {
			return nil, &MalformedResponseError{Message: "wall post without id"}
		}
		if item.Likes == nil {
			return nil, &MalformedResponseError{Message: "wall post without likes"}
		}

		record := PostRecord{
			PostID:      *item.ID,
			LikeCount:   item.Likes.Count,
			PublishedAt: time.Unix(item.Date, 0),
		}
		if item.Views != nil {
			record.ViewCount = item.Views.Count
		}
		records = append(records, record)
	}
	return records, nil
}

// GetGroupStats собирает сводку: подписчики плюс статистика последних постов.
// Сначала подписчики, потом посты; возвращается первая встреченная ошибка.
func (c *Client) GetGroupStats(ctx context.Context, creds Credentials, postLimit int) (GroupStats, error) {
	followers, err := c.GetFollowerCount(ctx, creds)
	if err != nil {
		return GroupStats{}, err
	}

	posts, err := c.GetRecentPostStats(ctx, creds, postLimit)
	if err != nil {
		return GroupStats{}, err
	}

	return GroupStats{FollowerCount: followers, RecentPosts: posts}, nil
}
