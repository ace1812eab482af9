package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Redis repository
type RedisRepository struct {
	sessionRepo *SessionRepository
}

// 建立 Redis repository 物件
func NewRedisRepository(
	sessionRepo *SessionRepository,
) *RedisRepository {
	return &RedisRepository{
		sessionRepo: sessionRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewSessionRepository,
	NewRedisRepository)
