package admin

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/axiomai/axiom-server/internal/chat"
	"github.com/axiomai/axiom-server/internal/models"
	"github.com/axiomai/axiom-server/internal/store/redisstore"
	"gorm.io/gorm"
)

type ModeCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type UserStats struct {
	Total int64 `json:"total"`
}

type ChatStats struct {
	Total  int64       `json:"total"`
	ByMode []ModeCount `json:"byMode"`
}

type MessageStats struct {
	Total int64 `json:"total"`
}

type Stats struct {
	Users    UserStats    `json:"users"`
	Chats    ChatStats    `json:"chats"`
	Messages MessageStats `json:"messages"`
}

// Service computes read-only dashboard aggregates. The redis cache is
// optional; with a nil store every call hits the database.
type Service struct {
	db       *gorm.DB
	cache    *redisstore.Store
	cacheTTL time.Duration
}

func NewService(db *gorm.DB, cache *redisstore.Store, cacheTTL time.Duration) *Service {
	return &Service{db: db, cache: cache, cacheTTL: cacheTTL}
}

func (s *Service) Dashboard(ctx context.Context) (*Stats, error) {
	if s.cache != nil {
		if b, err := s.cache.GetDashboard(ctx); err == nil && b != nil {
			var cached Stats
			if json.Unmarshal(b, &cached) == nil {
				return &cached, nil
			}
		}
	}

	var stats Stats

	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&stats.Users.Total).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&chat.Chat{}).Count(&stats.Chats.Total).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&chat.Chat{}).
		Select("mode AS name, COUNT(*) AS value").
		Group("mode").
		Order("mode ASC").
		Scan(&stats.Chats.ByMode).Error; err != nil {
		return nil, err
	}
	if stats.Chats.ByMode == nil {
		stats.Chats.ByMode = []ModeCount{}
	}
	if err := s.db.WithContext(ctx).Model(&chat.Message{}).Count(&stats.Messages.Total).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		if b, err := json.Marshal(stats); err == nil {
			if err := s.cache.SetDashboard(ctx, b, s.cacheTTL); err != nil {
				log.Printf("admin: dashboard cache write failed: %v", err)
			}
		}
	}

	return &stats, nil
}
