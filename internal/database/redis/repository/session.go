package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecotutor/internal/core"
	"ecotutor/internal/database/client"
	"ecotutor/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type SessionRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewSessionRepository(trace *telemetry.Trace, client *client.RedisClient) *SessionRepository {
	return &SessionRepository{trace: trace, client: client.Client()}
}

var ErrSessionNotFound = errors.New("session not found")

// Put 寫入 session 白名單。JWT 驗章之外還要查到這個 key 才算登入中，
// 登出時刪掉 key 即可讓尚未過期的 token 立刻失效。
func (repository *SessionRepository) Put(
	contextValue context.Context,
	sessionID string,
	username string,
	timeToLive time.Duration,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceSessionMeta{Username: username, Status: "put"}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(sessionID)
	returnedError = repository.client.Set(contextValue, redisKey, username, timeToLive).Err()
	return returnedError
}

// Get 回傳 session 所屬的 username；key 不存在（已登出或過期）回傳 ErrSessionNotFound。
func (repository *SessionRepository) Get(
	contextValue context.Context,
	sessionID string,
) (username string, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := repository.buildKey(sessionID)
	username, getError := repository.client.Get(contextValue, redisKey).Result()
	if getError != nil {
		if errors.Is(getError, redis.Nil) {
			returnedError = ErrSessionNotFound
			return "", returnedError
		}
		returnedError = getError
		return "", returnedError
	}

	traceMetadata := core.TraceSessionMeta{Username: username, Status: "hit"}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return username, nil
}

// Delete 移除 session（登出）
func (repository *SessionRepository) Delete(
	contextValue context.Context,
	sessionID string,
) (returnedError error) {

	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := repository.buildKey(sessionID)
	returnedError = repository.client.Del(contextValue, redisKey).Err()
	return returnedError
}

func (repository *SessionRepository) buildKey(sessionID string) string {
	// ecotutor:session:<session_id>
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeySession, sessionID)
}
