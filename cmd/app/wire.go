//go:build wireinject
// +build wireinject

package main

import (
	"ecotutor/config"
	"ecotutor/internal/command"
	"ecotutor/internal/cron"
	"ecotutor/internal/database"
	"ecotutor/internal/database/client"
	sqliteRepo "ecotutor/internal/database/sqlite/repository"
	"ecotutor/internal/handler"
	"ecotutor/internal/middleware"
	"ecotutor/internal/router"
	"ecotutor/internal/service"
	"ecotutor/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(wire.Build(
		command.ProviderSet,
		telemetry.NewTrace,
		client.NewSQLiteClient,
		sqliteRepo.NewQueryLogRepository,
	))
}
