package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLevel(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// NewLogger builds a JSON logger that writes to fileSyncer and stderr and tags every entry with serviceName.
func NewLogger(serviceName string, logLevel string, fileSyncer zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	sink := zapcore.AddSync(os.Stderr)
	if fileSyncer != nil {
		sink = zapcore.NewMultiWriteSyncer(fileSyncer, sink)
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, parseLevel(logLevel))
	return zap.New(core, zap.AddCaller()).With(zap.String("service.name", serviceName))
}
