package snowflake

import (
	"fmt"

	"go.uber.org/zap"

	"katydid-common-guid/pkg/guid/clock"
	"katydid-common-guid/pkg/guid/core"
	"katydid-common-guid/pkg/guid/layout"
)

// ============================================================================
// Snowflake 配置定义
// ============================================================================

// Config Snowflake生成器配置
type Config struct {
	// DatacenterID 数据中心ID
	// 范围：0-31（5位二进制）
	// 用途：标识不同的数据中心，避免跨数据中心ID冲突
	DatacenterID int64

	// WorkerID 工作机器ID
	// 范围：0-31（5位二进制）
	// 用途：标识同一数据中心内的不同机器，避免同数据中心内ID冲突
	WorkerID int64

	// EpochMillis 起始时间戳（Unix毫秒）
	// 说明：
	//   - 编码前从当前时间中减去的固定参考点
	//   - 必须不晚于当前时间，否则构造失败
	//   - 更换Epoch后新旧ID不可混用解析
	//
	// 默认值：DefaultEpoch（2020-01-01 00:00:00 UTC）
	EpochMillis int64

	// ClockBackwardStrategy 时钟回拨处理策略
	// 可选值：
	//   - StrategyError: 直接返回错误（默认，最安全）
	//   - StrategyWait: 容忍范围内等待时钟追上，超出范围返回错误
	ClockBackwardStrategy core.ClockBackwardStrategy

	// ClockBackwardTolerance 时钟回拨容忍时间（毫秒）
	// 说明：
	//   - 仅在策略为 StrategyWait 时生效
	//   - 回拨时间在容忍范围内时，生成器会等待时钟追上
	//   - 超过容忍范围仍会返回错误
	//   - 零值表示零容忍：任何回拨立即报错
	//
	// 范围：0-1000ms（防止无限等待）
	ClockBackwardTolerance int64

	// SequenceWaitRetries 序列号耗尽时等待下一毫秒的轮询次数上限
	// 说明：
	//   - 每次轮询休眠100微秒，默认10000次约等于1秒
	//   - 正常时钟下等待不会超过1-2毫秒，超出上限说明时钟停滞，
	//     此时返回ErrClockStalled而不是无限阻塞
	//
	// 默认值：10000（0表示使用默认值）
	SequenceWaitRetries int

	// EnableMetrics 是否启用性能监控
	// 说明：
	//   - true: 收集ID生成统计信息（如：生成数量、序列号溢出次数等）
	//   - false: 不收集监控数据，性能更优
	//
	// 默认值：false
	EnableMetrics bool

	// Clock 时钟源
	// 说明：nil时使用系统时钟；测试中可注入clock.Manual模拟时间
	Clock clock.Source

	// Logger 日志实例
	// 说明：nil时使用全局日志
	Logger *zap.Logger
}

// Validate 验证配置的有效性
// 说明：调用前应先执行SetDefaults补全默认值
func (c *Config) Validate() error {
	// 验证数据中心ID
	if c.DatacenterID < 0 || c.DatacenterID > layout.MaxDatacenterID {
		return fmt.Errorf("%w: got %d, valid range [0, %d]",
			core.ErrInvalidDatacenterID, c.DatacenterID, layout.MaxDatacenterID)
	}

	// 验证工作机器ID
	if c.WorkerID < 0 || c.WorkerID > layout.MaxWorkerID {
		return fmt.Errorf("%w: got %d, valid range [0, %d]",
			core.ErrInvalidWorkerID, c.WorkerID, layout.MaxWorkerID)
	}

	// 验证起始时间戳（必须为正且不晚于当前时间）
	if c.EpochMillis <= 0 {
		return fmt.Errorf("%w: got %d", core.ErrInvalidEpoch, c.EpochMillis)
	}
	if now := c.Clock.NowMillis(); c.EpochMillis > now {
		return fmt.Errorf("%w: epoch %d is later than current time %d",
			core.ErrInvalidEpoch, c.EpochMillis, now)
	}

	// 验证时钟回拨策略
	if !c.ClockBackwardStrategy.IsValid() {
		return fmt.Errorf("unknown clock backward strategy: %d", c.ClockBackwardStrategy)
	}

	// 验证时钟回拨容忍时间（不能为负数）
	if c.ClockBackwardTolerance < 0 {
		return fmt.Errorf("clock backward tolerance must be non-negative, got %d ms",
			c.ClockBackwardTolerance)
	}

	// 验证时钟回拨容忍时间（防止无限等待）
	if c.ClockBackwardTolerance > maxClockBackwardToleranceLimit {
		return fmt.Errorf("clock backward tolerance too large: max %d ms, got %d ms",
			maxClockBackwardToleranceLimit, c.ClockBackwardTolerance)
	}

	// 验证等待轮询次数上限
	if c.SequenceWaitRetries < 0 {
		return fmt.Errorf("sequence wait retries must be non-negative, got %d",
			c.SequenceWaitRetries)
	}

	return nil
}

// SetDefaults 设置配置的默认值
func (c *Config) SetDefaults() {
	// 时钟源默认使用系统时钟
	if c.Clock == nil {
		c.Clock = clock.NewSystem()
	}

	// 起始时间戳默认使用DefaultEpoch
	if c.EpochMillis == 0 {
		c.EpochMillis = DefaultEpoch
	}

	// 等待轮询次数上限
	if c.SequenceWaitRetries == 0 {
		c.SequenceWaitRetries = defaultSequenceWaitRetries
	}

	// 注意：ClockBackwardStrategy的零值是StrategyError，这是合理的默认值；
	// ClockBackwardTolerance的零值表示零容忍（任何回拨立即报错），
	// 是StrategyWait下的合法配置，不做默认值替换
}

// Clone 克隆配置对象
func (c *Config) Clone() *Config {
	// 创建新的配置对象，复制所有字段
	return &Config{
		DatacenterID:           c.DatacenterID,
		WorkerID:               c.WorkerID,
		EpochMillis:            c.EpochMillis,
		ClockBackwardStrategy:  c.ClockBackwardStrategy,
		ClockBackwardTolerance: c.ClockBackwardTolerance,
		SequenceWaitRetries:    c.SequenceWaitRetries,
		EnableMetrics:          c.EnableMetrics,
		Clock:                  c.Clock,
		Logger:                 c.Logger,
	}
}
