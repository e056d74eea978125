package main

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// the sink every ThreadLogger writes to
var zapLogger = zap.NewNop()

type flogger interface {
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

// ThreadLogger tags each message with the goroutine's name
type ThreadLogger struct {
	name  string
	sugar *zap.SugaredLogger
}

func (tl *ThreadLogger) logger() *zap.SugaredLogger {
	if tl.sugar == nil {
		tl.sugar = zapLogger.Named(tl.name).Sugar()
	}
	return tl.sugar
}

func (tl *ThreadLogger) Printf(format string, args ...interface{}) {
	tl.logger().Infof(format, args...)
}

func (tl *ThreadLogger) Println(args ...interface{}) {
	tl.logger().Infoln(args...)
}

// setupLogging replaces the package sink, logs go to the rotated logFile
// when one is configured and stderr otherwise
func setupLogging(settings configSettings) (*zap.Logger, error) {
	if settings.GetInt(sLogMaxSize) < 0 || settings.GetInt(sLogMaxBackups) < 0 {
		return nil, errors.Errorf("bad log rotation %d/%d",
			settings.GetInt(sLogMaxSize), settings.GetInt(sLogMaxBackups))
	}

	var encCfg zapcore.EncoderConfig
	level := zap.InfoLevel
	if settings.GetBool(sDebug) {
		encCfg = zap.NewDevelopmentEncoderConfig()
		level = zap.DebugLevel
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	var sink zapcore.WriteSyncer
	logFile := settings.GetString(sLogFile)
	if logFile != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    settings.GetInt(sLogMaxSize),
			MaxBackups: settings.GetInt(sLogMaxBackups),
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, level)
	zapLogger = zap.New(core)
	return zapLogger, nil
}
