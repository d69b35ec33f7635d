package logger

import (
	"fmt"

	"github.com/GlebRadaev/fruitshop/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceName = "fruitshop"
	timeLayout  = "15:04:05 02-01-2006"
)

// InitLogger installs the global zap logger described by conf. Levels above
// error are refused.
func InitLogger(conf *config.Config) error {
	lvl, err := zapcore.ParseLevel(conf.LogLvl)
	if err != nil || lvl > zapcore.ErrorLevel {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encoding, encoderConfig, err := encoderFor(conf.LogFormat)
	if err != nil {
		return err
	}

	logger, err := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		DisableStacktrace: lvl > zapcore.DebugLevel,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields:     map[string]any{"service": serviceName},
	}.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger)
	return nil
}

func encoderFor(format string) (string, zapcore.EncoderConfig, error) {
	switch format {
	case "", "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		cfg.EncodeDuration = zapcore.MillisDurationEncoder
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.CallerKey = zapcore.OmitKey
		return "console", cfg, nil
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		cfg.EncodeDuration = zapcore.MillisDurationEncoder
		return "json", cfg, nil
	default:
		return "", zapcore.EncoderConfig{}, fmt.Errorf("unsupported log format: %s", format)
	}
}
