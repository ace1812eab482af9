package core

// ─── Database Types ────────────────────────────────────────────────────────────

// DatabaseType defines the type of database
type DatabaseType string

const (
	SQLite DatabaseType = "sqlite"
	Mongo  DatabaseType = "mongo"
	Redis  DatabaseType = "redis"
)

// Databases contains all supported database types
var Databases = []DatabaseType{SQLite, Mongo, Redis}

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBEcotutor MongoDatabaseName = "ecotutor"
)

// MongoDB collections
const (
	MongoCollectionUsers MongoCollection = "ecotutor_users"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeySession    RedisKey = "session"  // 使用者 session 資料
	RedisKeyServerName RedisKey = "ecotutor" // 伺服器名稱（key 前綴）
)

const (
	FluentdRequest   FluentdSubTag = "request_log"
	FluentdResponse  FluentdSubTag = "response_log"
	FluentdUsage     FluentdSubTag = "usage_log"
	FluentdFootprint FluentdSubTag = "footprint_log"
)
