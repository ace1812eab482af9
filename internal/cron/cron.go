package cron

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewDailyFootprintJob)

type Cron struct {
	logger       *zap.Logger
	server       *cron.Cron
	footprintJob *DailyFootprintJob
}

// NewCron .
func NewCron(logger *zap.Logger, footprintJob *DailyFootprintJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithLocation(time.UTC),
	)

	return &Cron{
		logger:       logger,
		server:       server,
		footprintJob: footprintJob,
	}
}

func (c *Cron) Run() error {
	// 每天 00:05（UTC）結算前一日全體用量
	if _, err := c.server.AddFunc("0 5 0 * * *", c.footprintJob.Run); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}
