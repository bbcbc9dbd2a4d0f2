package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 日志配置
type Config struct {
	// Level 日志级别（debug/info/warn/error）
	// 默认值：info
	Level string

	// Filename 日志文件路径
	// 说明：为空时只输出到控制台，不写文件
	Filename string

	// MaxSizeMB 单个日志文件最大大小（MB）
	MaxSizeMB int

	// MaxBackups 保留的旧日志文件数量
	MaxBackups int

	// MaxAgeDays 旧日志文件保留天数
	MaxAgeDays int

	// Compress 是否压缩旧日志文件
	Compress bool
}

var (
	mu     sync.RWMutex
	global = newDefault()
)

// L 获取全局日志实例
// 说明：未调用Init时返回默认的控制台日志
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Init 按配置初始化全局日志
func Init(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("logger config cannot be nil")
	}

	// 步骤1：解析日志级别
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
		}
	}

	// 步骤2：构造输出目标
	// 说明：配置了文件路径时使用lumberjack做滚动切割，否则输出到stderr
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var core zapcore.Core
	if cfg.Filename != "" {
		writer := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		core = zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(writer),
			level,
		)
	} else {
		stderr, _, err := zap.Open("stderr")
		if err != nil {
			return fmt.Errorf("failed to open stderr sink: %w", err)
		}
		core = zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			stderr,
			level,
		)
	}

	// 步骤3：替换全局实例
	mu.Lock()
	defer mu.Unlock()
	global = zap.New(core)

	return nil
}

// newDefault 创建默认日志实例
func newDefault() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		// 构建失败时退化为空日志，不影响业务逻辑
		return zap.NewNop()
	}
	return l
}
