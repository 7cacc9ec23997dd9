package logger

import (
	"job-routing/internal/config"

	"go.uber.org/zap"
)

func New(cfg config.AppConfig) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.IsProduction() {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("app", cfg.AppName), zap.String("env", cfg.Environment)), nil
}
