package snowflake

import "time"

const (
	// DefaultEpoch 默认起始时间戳 (2020-01-01 00:00:00 UTC)
	DefaultEpoch int64 = 1577836800000 // 毫秒时间戳

	// 等待下一毫秒时的休眠时间（微秒）
	sleepDuration = 100 * time.Microsecond

	// 时钟回拨容忍度的绝对上限（毫秒），防止无限等待
	maxClockBackwardToleranceLimit = 1000

	// 等待下一毫秒的默认轮询次数上限
	// 说明：每次轮询间隔100微秒，默认上限约1秒；
	// 正常时钟每毫秒必然推进，超出上限视为时钟停滞并返回错误
	defaultSequenceWaitRetries = 10_000

	// 批量生成最大数量（支持跨毫秒生成）
	maxBatchSize = 100_000

	// 时钟回拨等待策略最大重试次数
	maxWaitRetries = 10

	// 验证时允许的未来时间容差（毫秒）
	maxFutureTimeTolerance = 60 * 1000 // 1分钟
)
