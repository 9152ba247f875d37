// Package commands defines the CLI surface over the scheduling store.
package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/schedule-master/internal/config"
	"github.com/jakechorley/schedule-master/pkg/core/schedule"
)

// AppContext holds the application dependencies shared by every command.
type AppContext struct {
	Ctx    context.Context
	Cfg    *config.Config
	Store  *schedule.Store
	Logger *zap.Logger
}
