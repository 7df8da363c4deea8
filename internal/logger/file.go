package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures rotated file output.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	// Fields are added to every file entry. The core of l does not expose
	// the fields it was built with, so callers pass them again here.
	Fields []zap.Field
}

// WithFile tees l into a JSON log file rotated by lumberjack. The file gets
// every entry l itself would write. The returned func closes the file.
func WithFile(l *zap.Logger, opts FileOptions) (*zap.Logger, func() error, error) {
	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	var fileCore zapcore.Core = zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), l.Core())
	if len(opts.Fields) > 0 {
		fileCore = fileCore.With(opts.Fields)
	}

	tee := l.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, fileCore)
	}))
	return tee, w.Close, nil
}
