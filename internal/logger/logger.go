package logger

import (
	"go.uber.org/zap"

	"github.com/linmeili/french-master-bot/internal/config"
)

// New builds the application logger for the configured environment.
func New(cfg *config.Config) (*zap.Logger, error) {
	switch cfg.Env {
	case "production", "prod":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}
