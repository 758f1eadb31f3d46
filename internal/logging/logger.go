package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options control how a run logs to console and, optionally, to file.
type Options struct {
	Verbose   bool
	Debug     bool
	File      string // empty disables file logging
	Overwrite bool
	Append    bool
}

// New builds the process logger: a console core always, tee'd with a
// rotating file core when a path is given. Constructed once per
// invocation; callers must not rebuild it mid-run.
func New(opts Options) (*zap.Logger, error) {
	cores := []zapcore.Core{consoleCore(opts)}

	if opts.File != "" {
		fc, err := fileCore(opts)
		if err != nil {
			return nil, err
		}
		cores = append(cores, fc)
	}

	var zopts []zap.Option
	if opts.Debug {
		zopts = append(zopts, zap.AddCaller())
	}
	return zap.New(zapcore.NewTee(cores...), zopts...), nil
}

func consoleCore(opts Options) zapcore.Core {
	cfg := zap.NewDevelopmentEncoderConfig()
	level := zap.InfoLevel
	switch {
	case opts.Debug:
		level = zap.DebugLevel
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	case opts.Verbose:
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	default:
		// Plain output: short timestamps, no level tag.
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.LevelKey = zapcore.OmitKey
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stdout), level)
}

func fileCore(opts Options) (zapcore.Core, error) {
	path := opts.File
	if _, err := os.Stat(path); err == nil && !opts.Append && !opts.Overwrite {
		return nil, fmt.Errorf("log file %s already exists; use --append or --overwrite", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("unable to create log directory %s: %w", dir, err)
		}
	}

	// lumberjack always appends, so overwrite means dropping the old file.
	if opts.Overwrite {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("unable to overwrite %s: %w", path, err)
		}
	}

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
	})
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	return zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, zap.InfoLevel), nil
}
