package database

import (
	"ecotutor/internal/database/client"
	fluentdRepo "ecotutor/internal/database/fluentd/repository"
	mongoRepo "ecotutor/internal/database/mongodb/repository"
	redisRepo "ecotutor/internal/database/redis/repository"
	sqliteRepo "ecotutor/internal/database/sqlite/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewSQLiteClient,
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	sqliteRepo.ProviderSet,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
