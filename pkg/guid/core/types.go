package core

// GeneratorType 生成器类型枚举
type GeneratorType string

const (
	// GeneratorTypeSnowflake Snowflake算法生成器
	GeneratorTypeSnowflake GeneratorType = "snowflake"
	// GeneratorTypeUUID UUID生成器（预留，便于扩展）
	GeneratorTypeUUID GeneratorType = "uuid"
	// GeneratorTypeCustom 自定义生成器（预留，便于扩展）
	GeneratorTypeCustom GeneratorType = "custom"
)

// String 实现Stringer接口
func (t GeneratorType) String() string {
	return string(t)
}

// IsValid 验证生成器类型是否有效
func (t GeneratorType) IsValid() bool {
	switch t {
	case GeneratorTypeSnowflake, GeneratorTypeUUID, GeneratorTypeCustom:
		return true
	default:
		return false
	}
}

// ClockBackwardStrategy 时钟回拨处理策略
type ClockBackwardStrategy int

const (
	// StrategyError 直接返回错误（默认，最安全）
	// 说明：回拨条件可能持续存在，调用方不应盲目重试
	StrategyError ClockBackwardStrategy = iota
	// StrategyWait 回拨在容忍范围内时等待时钟追上，超出范围仍返回错误
	StrategyWait
)

// String 实现Stringer接口
func (s ClockBackwardStrategy) String() string {
	switch s {
	case StrategyError:
		return "Error"
	case StrategyWait:
		return "Wait"
	default:
		return "Unknown"
	}
}

// IsValid 验证策略是否有效
func (s ClockBackwardStrategy) IsValid() bool {
	return s == StrategyError || s == StrategyWait
}
