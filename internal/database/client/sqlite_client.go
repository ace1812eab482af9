package client

import (
	"database/sql"

	"ecotutor/config"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteClient 連接帳本資料庫（query_logs）
type SQLiteClient struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLiteClient(logger *zap.Logger, config *config.Configuration) (*SQLiteClient, func(), error) {
	path := config.Ledger.Path
	if path == "" {
		path = "ecotutor.db"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Error("failed to open ledger database", zap.Error(err))
		return nil, nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		logger.Error("failed to initialize ledger schema", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to ledger database", zap.String("path", path))

	sqliteClient := &SQLiteClient{db: db, logger: logger}
	cleanup := func() {
		logger.Info("closing the ledger database resources")
		if err := sqliteClient.Close(); err != nil {
			logger.Error("failed to close ledger database", zap.Error(err))
		}
	}
	return sqliteClient, cleanup, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS query_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		query_text TEXT NOT NULL,
		response_text TEXT NOT NULL,
		energy_kwh REAL NOT NULL,
		co2_kg REAL NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_query_logs_username_created ON query_logs(username, created_at);
	CREATE INDEX IF NOT EXISTS idx_query_logs_created ON query_logs(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Close 關閉帳本資料庫連線
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// DB 回傳底層連線
func (c *SQLiteClient) DB() *sql.DB {
	return c.db
}
