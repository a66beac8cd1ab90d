package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger: tinted stdout, plus a rotating
// file under cfg.LogDir when one is configured.
func NewLogger(cfg *Config) *slog.Logger {
	var w io.Writer = os.Stdout
	noColor := false

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o755); err == nil {
			w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
				Filename:   filepath.Join(cfg.LogDir, "yin.log"),
				MaxSize:    10, // megabytes
				MaxBackups: 5,
				MaxAge:     30, // days
			})
			noColor = true
		}
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}))
	slog.SetDefault(logger)
	return logger
}
