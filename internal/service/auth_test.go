package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecotutor/config"
	"ecotutor/internal/core"
	"ecotutor/internal/telemetry"
)

func newAuthFixture(t *testing.T, conf *config.Configuration) *AuthService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return NewAuthService(conf, trace, zap.NewNop(), nil, nil)
}

func TestSignupRole_AdminBootstrap(t *testing.T) {
	conf := &config.Configuration{}
	conf.App.AdminUsername = "registrar"
	authService := newAuthFixture(t, conf)

	require.Equal(t, core.RoleAdmin, authService.signupRole("registrar"))
	require.Equal(t, core.RoleUser, authService.signupRole("alice"))
}

func TestSignupRole_NoAdminConfigured(t *testing.T) {
	authService := newAuthFixture(t, &config.Configuration{})

	// 沒設定管理員帳號時，任何註冊都只能拿 user
	require.Equal(t, core.RoleUser, authService.signupRole("registrar"))
	require.Equal(t, core.RoleUser, authService.signupRole(""))
}
