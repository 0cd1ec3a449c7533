package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/NisargPatel57/Ecommerce--EI/logic"
)

// Config holds settings read from the environment.
type Config struct {
	LogLevel zapcore.Level
	Discount logic.DiscountPolicy
}

// LoadConfig reads LOG_LEVEL and DISCOUNT through getenv.
func LoadConfig(getenv func(string) string) (*Config, error) {
	levelName := getenv("LOG_LEVEL")
	if levelName == "" {
		levelName = "info"
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, logic.NewInvalidArgumentf("%s: %q", logic.ErrMsgInvalidLogLevel, levelName)
	}

	discount, err := logic.ParseDiscount(getenv("DISCOUNT"))
	if err != nil {
		return nil, err
	}

	return &Config{LogLevel: level, Discount: discount}, nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func loadConfigFromEnv() (*Config, error) {
	return LoadConfig(os.Getenv)
}
