package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"katydid-common-guid/pkg/guid/core"
	"katydid-common-guid/pkg/guid/snowflake"
	"katydid-common-guid/pkg/logger"
)

const (
	// envPrefix 环境变量前缀
	// 说明：如 GUID_WORKER_ID=7 会覆盖配置文件中的 worker_id
	envPrefix = "GUID"

	// 时钟回拨策略的配置取值
	policyStrict   = "strict"
	policyTolerant = "tolerant"
)

// FileConfig 配置文件结构
// 说明：字段通过validator标签做范围校验，越界时加载失败
type FileConfig struct {
	// DatacenterID 数据中心ID（0-31）
	DatacenterID int64 `mapstructure:"datacenter_id" validate:"gte=0,lte=31"`

	// WorkerID 工作机器ID（0-31）
	WorkerID int64 `mapstructure:"worker_id" validate:"gte=0,lte=31"`

	// EpochMillis 起始时间戳（Unix毫秒），0表示使用默认值
	EpochMillis int64 `mapstructure:"epoch_millis" validate:"gte=0"`

	// ClockBackwardPolicy 时钟回拨策略（strict/tolerant）
	ClockBackwardPolicy string `mapstructure:"clock_backward_policy" validate:"omitempty,oneof=strict tolerant"`

	// ClockBackwardToleranceMs 回拨容忍时间（毫秒），仅tolerant策略下生效
	ClockBackwardToleranceMs int64 `mapstructure:"clock_backward_tolerance_ms" validate:"gte=0,lte=1000"`

	// SequenceWaitRetries 序列号耗尽时等待下一毫秒的轮询次数上限，0表示使用默认值
	SequenceWaitRetries int `mapstructure:"sequence_wait_retries" validate:"gte=0"`

	// EnableMetrics 是否启用性能监控
	EnableMetrics bool `mapstructure:"enable_metrics"`
}

// validate 结构体校验器
// 说明：validator实例是并发安全的，全局共享一个即可
var validate = validator.New()

// Load 从配置文件和环境变量加载生成器配置
// 优先级：环境变量（GUID_前缀） > 配置文件 > 默认值
func Load(path string) (*snowflake.Config, error) {
	v := viper.New()

	// 步骤1：注册默认值
	v.SetDefault("datacenter_id", 0)
	v.SetDefault("worker_id", 0)
	v.SetDefault("epoch_millis", 0)
	v.SetDefault("clock_backward_policy", policyStrict)
	v.SetDefault("clock_backward_tolerance_ms", 0)
	v.SetDefault("sequence_wait_retries", 0)
	v.SetDefault("enable_metrics", false)

	// 步骤2：绑定环境变量
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 步骤3：读取配置文件（path为空时跳过，只用环境变量和默认值）
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}
	}

	// 步骤4：反序列化并校验
	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate.Struct(&fc); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg, err := fc.ToGeneratorConfig()
	if err != nil {
		return nil, err
	}

	logger.L().Info("生成器配置加载完成",
		zap.String("file", path),
		zap.Int64("datacenter_id", cfg.DatacenterID),
		zap.Int64("worker_id", cfg.WorkerID),
		zap.Stringer("clock_backward_strategy", cfg.ClockBackwardStrategy))

	return cfg, nil
}

// ToGeneratorConfig 转换为snowflake生成器配置
func (fc *FileConfig) ToGeneratorConfig() (*snowflake.Config, error) {
	strategy, err := parsePolicy(fc.ClockBackwardPolicy)
	if err != nil {
		return nil, err
	}

	return &snowflake.Config{
		DatacenterID:           fc.DatacenterID,
		WorkerID:               fc.WorkerID,
		EpochMillis:            fc.EpochMillis,
		ClockBackwardStrategy:  strategy,
		ClockBackwardTolerance: fc.ClockBackwardToleranceMs,
		SequenceWaitRetries:    fc.SequenceWaitRetries,
		EnableMetrics:          fc.EnableMetrics,
	}, nil
}

// parsePolicy 解析时钟回拨策略字符串
func parsePolicy(policy string) (core.ClockBackwardStrategy, error) {
	switch policy {
	case "", policyStrict:
		return core.StrategyError, nil
	case policyTolerant:
		return core.StrategyWait, nil
	default:
		return core.StrategyError, fmt.Errorf("unknown clock backward policy: '%s'", policy)
	}
}
