package snowflake

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"katydid-common-guid/pkg/guid/clock"
	"katydid-common-guid/pkg/guid/core"
	"katydid-common-guid/pkg/guid/layout"
	"katydid-common-guid/pkg/logger"
)

// Generator Snowflake算法的ID生成器实现
type Generator struct {
	// ========== 核心状态 ==========
	lastTimestamp int64 // 上次生成ID的时间戳（毫秒）
	sequence      int64 // 当前毫秒内的序列号（0-4095）

	// ========== 不变配置 ==========
	datacenterID int64   // 数据中心ID（0-31）
	workerID     int64   // 工作机器ID（0-31）
	epoch        int64   // 起始时间戳（Unix毫秒）
	config       *Config // 生成器配置

	// ========== 依赖 ==========
	clock  clock.Source // 时钟源
	logger *zap.Logger  // 日志实例

	// ========== 监控和工具 ==========
	metrics   *Metrics         // 性能监控指标（可选，nil时不收集）
	validator core.IDValidator // ID验证器
	parser    core.IDParser    // ID解析器

	// ========== 并发控制 ==========
	mu sync.Mutex // 互斥锁，保护生成器状态
}

// New 创建一个新的Snowflake ID生成器
// 说明：使用最简配置创建生成器，默认关闭监控
func New(datacenterID, workerID int64) (core.Generator, error) {
	return NewWithConfig(&Config{
		DatacenterID:  datacenterID,
		WorkerID:      workerID,
		EnableMetrics: false, // 默认关闭监控以保持性能
	})
}

// NewWithConfig 使用配置创建Snowflake ID生成器
// 说明：完整配置方式，支持自定义Epoch、时钟回拨策略和监控开关
func NewWithConfig(config *Config) (core.Generator, error) {
	if config == nil {
		return nil, core.ErrNilConfig
	}

	// 步骤1：克隆配置并补全默认值（不可变性原则：不修改调用方的对象）
	cfg := config.Clone()
	cfg.SetDefaults()

	// 步骤2：验证配置
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 步骤3：初始化监控（如果启用）
	var metrics *Metrics
	if cfg.EnableMetrics {
		metrics = NewMetrics()
	}

	log := cfg.Logger
	if log == nil {
		log = logger.L()
	}

	// 步骤4：创建生成器实例
	generator := &Generator{
		datacenterID:  cfg.DatacenterID,
		workerID:      cfg.WorkerID,
		epoch:         cfg.EpochMillis,
		lastTimestamp: -1, // 初始化为-1，表示尚未生成过ID
		sequence:      -1, // 初始化为-1，首次生成时会递增为0
		config:        cfg,
		clock:         cfg.Clock,
		logger:        log,
		metrics:       metrics,
		validator:     NewValidatorWithClock(cfg.EpochMillis, cfg.Clock),
		parser:        NewParser(cfg.EpochMillis),
	}

	log.Info("Snowflake生成器创建成功",
		zap.Int64("datacenter_id", cfg.DatacenterID),
		zap.Int64("worker_id", cfg.WorkerID),
		zap.Int64("epoch_millis", cfg.EpochMillis),
		zap.Stringer("clock_backward_strategy", cfg.ClockBackwardStrategy),
		zap.Bool("metrics_enabled", cfg.EnableMetrics))

	return generator, nil
}

// NextID 生成下一个唯一ID（线程安全）
// 实现core.IDGenerator接口
func (g *Generator) NextID() (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.nextIDUnsafe()
}

// NextIDString 生成下一个唯一ID的十进制字符串表示（线程安全）
// 实现core.IDGenerator接口
func (g *Generator) NextIDString() (string, error) {
	id, err := g.NextID()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

// NextIDBatch 批量生成ID（线程安全）
// 实现core.BatchGenerator接口
func (g *Generator) NextIDBatch(n int) ([]int64, error) {
	// 参数验证
	if n <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d",
			core.ErrInvalidBatchSize, n)
	}
	if n > maxBatchSize {
		return nil, fmt.Errorf("%w: batch size too large (max %d), got %d",
			core.ErrInvalidBatchSize, maxBatchSize, n)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.nextIDBatchUnsafe(n)
}

// GetWorkerID 获取工作机器ID
// 实现core.ConfigurableGenerator接口
func (g *Generator) GetWorkerID() int64 {
	return g.workerID
}

// GetDatacenterID 获取数据中心ID
// 实现core.ConfigurableGenerator接口
func (g *Generator) GetDatacenterID() int64 {
	return g.datacenterID
}

// GetEpoch 获取起始时间戳（Unix毫秒）
// 实现core.ConfigurableGenerator接口
func (g *Generator) GetEpoch() int64 {
	return g.epoch
}

// GetMetrics 获取性能监控指标
// 实现core.MonitorableGenerator接口
func (g *Generator) GetMetrics() map[string]uint64 {
	if g.metrics == nil {
		return map[string]uint64{"metrics_enabled": 0}
	}
	return g.metrics.ToMap()
}

// ResetMetrics 重置性能监控指标
// 实现core.MonitorableGenerator接口
func (g *Generator) ResetMetrics() {
	if g.metrics != nil {
		g.metrics.Reset()
	}
}

// GetIDCount 获取已生成的ID总数
// 实现core.MonitorableGenerator接口
func (g *Generator) GetIDCount() uint64 {
	if g.metrics == nil {
		return 0
	}
	return g.metrics.IDCount.Load()
}

// ParseID 解析ID
// 实现core.ParseableGenerator接口
func (g *Generator) ParseID(id int64) (*core.IDInfo, error) {
	return g.parser.Parse(id)
}

// ValidateID 验证ID
// 实现core.ParseableGenerator接口
func (g *Generator) ValidateID(id int64) error {
	return g.validator.Validate(id)
}

// nextIDUnsafe 内部使用的不加锁版本的ID生成方法
// 说明：调用者必须已持有锁
func (g *Generator) nextIDUnsafe() (int64, error) {
	// 步骤1：获取当前时间戳（毫秒）
	timestamp := g.clock.NowMillis()

	// 步骤2：时钟回拨检测与处理
	// 说明：等待策略成功后重新读取的时钟仍可能再次回拨，
	// 必须循环检测，退出循环时恒有 timestamp >= lastTimestamp
	for timestamp < g.lastTimestamp {
		if err := g.handleClockBackward(timestamp); err != nil {
			g.logger.Error("时钟回拨，ID生成失败",
				zap.Int64("current_timestamp", timestamp),
				zap.Int64("last_timestamp", g.lastTimestamp),
				zap.Error(err))
			return 0, err
		}
		// 重新获取时间戳（等待策略下时钟已经追上）
		timestamp = g.clock.NowMillis()
	}

	// 步骤3：序列号管理
	if timestamp == g.lastTimestamp {
		// 同一毫秒内，检查序列号是否溢出
		if g.sequence >= layout.MaxSequence {
			// 序列号已达上限（4095），需要等待下一毫秒
			// 说明：同一毫秒内不允许复用序列号0，否则会与该毫秒内已发出的ID冲突
			if g.metrics != nil {
				g.metrics.SequenceOverflow.Add(1)
				g.metrics.WaitCount.Add(1)
			}
			startTime := time.Now()
			next, err := g.waitNextMillis(g.lastTimestamp)
			if g.metrics != nil {
				g.metrics.TotalWaitTimeNs.Add(uint64(time.Since(startTime).Nanoseconds()))
			}
			if err != nil {
				return 0, err
			}
			// 重置序列号为-1，后面会递增为0
			g.sequence = -1
			g.lastTimestamp = next
		}
		// 序列号递增（溢出后也会执行到这里）
		g.sequence++
	} else {
		// 新的毫秒，序列号重置为0
		g.sequence = 0
		g.lastTimestamp = timestamp
	}

	// 步骤4：组装ID
	// ID结构：时间戳差值(41位) | 数据中心ID(5位) | 工作机器ID(5位) | 序列号(12位)
	// 说明：差值越界（Epoch可表示范围耗尽或时钟早于Epoch）由Encode统一拦截
	id, err := layout.Encode(g.lastTimestamp-g.epoch, g.datacenterID, g.workerID, g.sequence)
	if err != nil {
		return 0, err
	}

	// 步骤5：更新监控指标
	if g.metrics != nil {
		g.metrics.IDCount.Add(1)
	}

	return id, nil
}

// nextIDBatchUnsafe 内部使用的不加锁版本的批量生成方法
// 说明：调用者必须已持有锁
func (g *Generator) nextIDBatchUnsafe(n int) ([]int64, error) {
	ids := make([]int64, 0, n)
	remainingIDs := n

	for remainingIDs > 0 {
		// 步骤1：获取当前时间戳
		timestamp := g.clock.NowMillis()

		// 步骤2：时钟回拨检测
		// 说明：与nextIDUnsafe相同，循环检测防止等待后再次回拨
		for timestamp < g.lastTimestamp {
			if err := g.handleClockBackward(timestamp); err != nil {
				// 返回已生成的ID和错误
				g.logger.Error("批量生成ID时遇到时钟回拨",
					zap.Int("generated", len(ids)),
					zap.Int("requested", n),
					zap.Error(err))
				return ids, fmt.Errorf("%w (generated %d/%d IDs)", err, len(ids), n)
			}
			timestamp = g.clock.NowMillis()
		}

		// 步骤3：计算当前毫秒可用的ID数量
		var availableInCurrentMs int
		if timestamp == g.lastTimestamp {
			// 同一毫秒内，计算剩余可用序列号数量
			// g.sequence 是当前已使用的最后一个序列号（范围0-4095）
			// 剩余可用数量 = MaxSequence - g.sequence
			availableInCurrentMs = int(layout.MaxSequence - g.sequence)
			if availableInCurrentMs <= 0 {
				// 序列号已耗尽，等待下一毫秒
				if g.metrics != nil {
					g.metrics.SequenceOverflow.Add(1)
					g.metrics.WaitCount.Add(1)
				}
				startTime := time.Now()
				next, err := g.waitNextMillis(g.lastTimestamp)
				if g.metrics != nil {
					g.metrics.TotalWaitTimeNs.Add(uint64(time.Since(startTime).Nanoseconds()))
				}
				if err != nil {
					return ids, fmt.Errorf("%w (generated %d/%d IDs)", err, len(ids), n)
				}
				// 新毫秒，重置为-1，后续会从0开始
				g.sequence = -1
				g.lastTimestamp = next
				availableInCurrentMs = layout.MaxSequence + 1 // 0-4095，共4096个
			}
		} else {
			// 新的毫秒，有完整的4096个序列号（0-4095）
			g.sequence = -1
			g.lastTimestamp = timestamp
			availableInCurrentMs = layout.MaxSequence + 1 // 0-4095，共4096个
		}

		// 步骤4：确定本轮生成数量
		batchSize := remainingIDs
		if batchSize > availableInCurrentMs {
			batchSize = availableInCurrentMs
		}

		// 步骤5：批量生成ID
		// 说明：该毫秒的公共部分由Encode组装并校验一次，
		// 序列号部分由availableInCurrentMs保证不越界
		baseID, err := layout.Encode(g.lastTimestamp-g.epoch, g.datacenterID, g.workerID, 0)
		if err != nil {
			return ids, fmt.Errorf("%w (generated %d/%d IDs)", err, len(ids), n)
		}

		// 批量生成：每次递增序列号并组装ID
		for i := 0; i < batchSize; i++ {
			g.sequence++
			id := baseID | g.sequence
			ids = append(ids, id)
		}

		// 步骤6：更新剩余数量
		remainingIDs -= batchSize
	}

	// 更新监控指标
	if g.metrics != nil {
		g.metrics.IDCount.Add(uint64(n))
	}

	return ids, nil
}

// handleClockBackward 处理时钟回拨
func (g *Generator) handleClockBackward(currentTimestamp int64) error {
	// 计算回拨偏移量
	offset := g.lastTimestamp - currentTimestamp

	// 更新监控指标
	if g.metrics != nil {
		g.metrics.ClockBackward.Add(1)
	}

	// 根据策略处理
	switch g.config.ClockBackwardStrategy {
	case core.StrategyError:
		// 策略1：直接返回错误（默认）
		// 说明：回拨条件可能持续存在，内部不重试，交由调用方决策
		return fmt.Errorf("%w: detected backward drift of %d ms",
			core.ErrClockMovedBackwards, offset)

	case core.StrategyWait:
		// 策略2：等待时钟追上
		if offset <= g.config.ClockBackwardTolerance {
			// 回拨在容忍范围内，尝试等待
			for retries := 0; retries < maxWaitRetries; retries++ {
				time.Sleep(time.Duration(offset+1) * time.Millisecond)
				newTimestamp := g.clock.NowMillis()
				if newTimestamp >= g.lastTimestamp {
					// 时钟已追上
					return nil
				}
				// 重新计算偏移量
				offset = g.lastTimestamp - newTimestamp
			}
			// 超过最大重试次数
			return fmt.Errorf("%w: backward drift persisted after %d retries",
				core.ErrClockMovedBackwards, maxWaitRetries)
		}
		// 回拨超过容忍范围
		return fmt.Errorf("%w: backward drift %d ms exceeds tolerance %d ms",
			core.ErrClockMovedBackwards, offset, g.config.ClockBackwardTolerance)

	default:
		// 未知策略（构造时已校验，正常不会到达）
		return fmt.Errorf("%w: unknown clock backward strategy",
			core.ErrClockMovedBackwards)
	}
}

// waitNextMillis 等待直到获取到比lastTimestamp更大的时间戳
// 说明：当序列号耗尽时，需要等待下一毫秒；
// 轮询次数受SequenceWaitRetries限制，超出后返回ErrClockStalled，
// 避免时钟停滞时调用方被无限阻塞
func (g *Generator) waitNextMillis(lastTimestamp int64) (int64, error) {
	timestamp := g.clock.NowMillis()
	for retries := 0; timestamp <= lastTimestamp; retries++ {
		if retries >= g.config.SequenceWaitRetries {
			if g.metrics != nil {
				g.metrics.ClockStalled.Add(1)
			}
			return 0, fmt.Errorf("%w: waited %d polls for timestamp > %d",
				core.ErrClockStalled, retries, lastTimestamp)
		}
		time.Sleep(sleepDuration) // 休眠100微秒，避免CPU空转
		timestamp = g.clock.NowMillis()
	}
	return timestamp, nil
}
