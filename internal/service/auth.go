package service

import (
	"context"
	"errors"
	"time"

	"ecotutor/config"
	"ecotutor/internal/core"
	"ecotutor/internal/database/mongodb/model"
	mongoRepo "ecotutor/internal/database/mongodb/repository"
	redisRepo "ecotutor/internal/database/redis/repository"
	"ecotutor/internal/dto"
	cErr "ecotutor/internal/pkg/error"
	"ecotutor/internal/telemetry"
	"ecotutor/utils/validate"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTLMinutes = 60

type AuthService struct {
	trace         *telemetry.Trace
	logger        *zap.Logger
	userRepo      *mongoRepo.UserRepository
	sessionRepo   *redisRepo.SessionRepository
	secretKey     []byte
	sessionTTL    time.Duration
	adminUsername string
}

func NewAuthService(
	conf *config.Configuration,
	trace *telemetry.Trace,
	logger *zap.Logger,
	userRepo *mongoRepo.UserRepository,
	sessionRepo *redisRepo.SessionRepository,
) *AuthService {
	ttlMinutes := conf.App.SessionTTLMinutes
	if ttlMinutes <= 0 {
		ttlMinutes = defaultSessionTTLMinutes
	}
	return &AuthService{
		trace:         trace,
		logger:        logger,
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		secretKey:     []byte(conf.App.SecretKey),
		sessionTTL:    time.Duration(ttlMinutes) * time.Minute,
		adminUsername: conf.App.AdminUsername,
	}
}

// signupRole 決定新帳號角色：設定檔指定的管理員帳號拿 admin，其他一律 user。
// 沒有其他升權路徑，管理面靠這個帳號 bootstrap。
func (s *AuthService) signupRole(username string) core.Role {
	if s.adminUsername != "" && username == s.adminUsername {
		return core.RoleAdmin
	}
	return core.RoleUser
}

// Signup 建立帳號。username 撞名回 409。
func (s *AuthService) Signup(ctx context.Context, signupDto *dto.SignupDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	passwordHash, hashError := bcrypt.GenerateFromPassword([]byte(signupDto.Password), bcrypt.DefaultCost)
	if hashError != nil {
		return cErr.InternalServer("password hash error")
	}

	user := &model.User{
		Username:     signupDto.Username,
		Email:        signupDto.Email,
		PasswordHash: string(passwordHash),
		Role:         s.signupRole(signupDto.Username),
		Status:       core.StatusActive,
	}
	if _, createError := s.userRepo.Create(ctx, user); createError != nil {
		if mongoRepo.IsDuplicateKey(createError) {
			return cErr.UsernameTaken("username already exists")
		}
		s.logger.Error("signup create user failed", zap.Error(createError))
		return cErr.DatabaseError("database Signup error")
	}
	return nil
}

// Login 驗證密碼並簽發 JWT；session id 同時寫入 Redis 白名單。
// 帳號不存在與密碼錯誤刻意回同一個錯，避免帳號枚舉。
func (s *AuthService) Login(ctx context.Context, loginDto *dto.LoginDto) (*dto.TokenResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, getError := s.userRepo.GetByUsername(ctx, loginDto.Username)
	if getError != nil {
		if errors.Is(getError, mongo.ErrNoDocuments) {
			return nil, cErr.InvalidCredentials("invalid username or password")
		}
		s.logger.Error("login lookup failed", zap.Error(getError))
		return nil, cErr.DatabaseError("database Login error")
	}
	if !validate.IsValidStatus(string(user.Status)) {
		// 手動改資料庫改出來的怪狀態，留 log 方便追
		s.logger.Warn("unknown account status",
			zap.String("username", user.Username),
			zap.String("status", string(user.Status)))
		return nil, cErr.Forbidden("account is not active")
	}
	if user.Status != core.StatusActive {
		return nil, cErr.Forbidden("account is not active")
	}
	if compareError := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(loginDto.Password)); compareError != nil {
		return nil, cErr.InvalidCredentials("invalid username or password")
	}

	sessionID := uuid.NewString()
	now := time.Now().UTC()
	claims := &core.Claims{
		Username:  user.Username,
		Role:      user.Role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}
	token, signError := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if signError != nil {
		return nil, cErr.InternalServer("token sign error")
	}

	if putError := s.sessionRepo.Put(ctx, sessionID, user.Username, s.sessionTTL); putError != nil {
		s.logger.Error("session store failed", zap.Error(putError))
		return nil, cErr.DatabaseError("session store error")
	}

	// 最後上線時間更新失敗不擋登入
	if _, seenError := s.userRepo.UpdateLastSeen(ctx, user.Username, now); seenError != nil {
		s.logger.Warn("update lastSeen failed", zap.Error(seenError))
	}

	return &dto.TokenResponseDto{
		Token:     token,
		ExpiresIn: int64(s.sessionTTL.Seconds()),
	}, nil
}

// Logout 刪掉 Redis session，讓尚未過期的 token 立即失效
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if deleteError := s.sessionRepo.Delete(ctx, sessionID); deleteError != nil {
		s.logger.Error("session delete failed", zap.Error(deleteError))
		return cErr.DatabaseError("session delete error")
	}
	return nil
}

// ParseToken 驗章並還原 Claims（session middleware 用）
func (s *AuthService) ParseToken(tokenString string) (*core.Claims, error) {
	claims := &core.Claims{}
	token, parseError := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, cErr.InvalidSession("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if parseError != nil || !token.Valid {
		return nil, cErr.InvalidSession("invalid or expired token")
	}
	return claims, nil
}

// VerifySession 確認 session 還在白名單上，回傳 session 所屬 username
func (s *AuthService) VerifySession(ctx context.Context, sessionID string) (string, error) {
	username, getError := s.sessionRepo.Get(ctx, sessionID)
	if getError != nil {
		if errors.Is(getError, redisRepo.ErrSessionNotFound) {
			return "", cErr.InvalidSession("session revoked or expired")
		}
		return "", cErr.DatabaseError("session lookup error")
	}
	return username, nil
}
