package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 SQLite repository
type SQLiteRepository struct {
	queryLogRepository *QueryLogRepository
}

// 建立 SQLite repository 物件
func NewSQLiteRepository(
	queryLogRepository *QueryLogRepository,
) *SQLiteRepository {
	return &SQLiteRepository{
		queryLogRepository: queryLogRepository,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewQueryLogRepository,
	NewSQLiteRepository)
