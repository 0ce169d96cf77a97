// Package logging builds the application logger. The TUI owns the terminal,
// so records go to a rotated file instead of stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure the log sink.
type Options struct {
	Path       string // empty disables logging
	Level      string // debug, info, warn, error; empty means info
	MaxSizeMB  int
	MaxBackups int
}

const (
	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
)

// New returns a JSON zap logger writing to a lumberjack-rotated file, and a
// close func that flushes and releases the file.
func New(opts Options) (*zap.Logger, func() error, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}

	level := zapcore.InfoLevel
	if raw := strings.TrimSpace(opts.Level); raw != "" {
		parsed, err := zapcore.ParseLevel(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    orDefault(opts.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: orDefault(opts.MaxBackups, defaultMaxBackups),
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), level)
	logger := zap.New(core)

	closeFn := func() error {
		_ = logger.Sync()
		return sink.Close()
	}
	return logger, closeFn, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
