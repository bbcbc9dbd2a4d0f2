package snowflake

import (
	"fmt"

	"katydid-common-guid/pkg/guid/clock"
	"katydid-common-guid/pkg/guid/core"
	"katydid-common-guid/pkg/guid/layout"
)

// Validator Snowflake ID验证器
type Validator struct {
	epoch int64        // 起始时间戳（Unix毫秒）
	clock clock.Source // 时钟源，用于未来时间校验
}

// ValidateID 全局验证函数（使用DefaultEpoch）
func ValidateID(id int64) error {
	return NewValidator(DefaultEpoch).Validate(id)
}

// NewValidator 创建新的验证器实例
// 说明：验证器是无状态的，可以创建多个实例或共享单个实例
func NewValidator(epochMillis int64) core.IDValidator {
	return NewValidatorWithClock(epochMillis, clock.NewSystem())
}

// NewValidatorWithClock 使用指定时钟源创建验证器
func NewValidatorWithClock(epochMillis int64, src clock.Source) core.IDValidator {
	if epochMillis <= 0 {
		epochMillis = DefaultEpoch
	}
	if src == nil {
		src = clock.NewSystem()
	}
	return &Validator{epoch: epochMillis, clock: src}
}

// Validate 验证Snowflake ID的有效性
// 实现core.IDValidator接口
func (v *Validator) Validate(id int64) error {
	// 验证1：ID必须为正整数
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d",
			core.ErrInvalidSnowflakeID, id)
	}

	// 提取时间戳（差值加上Epoch还原为Unix毫秒）
	timestamp := layout.Decode(id).TimestampDelta + v.epoch

	// 验证2：时间戳不能太超前
	// 说明：允许一定的时钟误差（maxFutureTimeTolerance = 1分钟）
	// 时间戳过于超前说明该ID不是用本Epoch生成的，或格式已损坏
	now := v.clock.NowMillis()
	if timestamp > now+maxFutureTimeTolerance {
		return fmt.Errorf("%w: timestamp %d is too far in the future (current: %d, max tolerance: %d ms)",
			core.ErrInvalidSnowflakeID, timestamp, now, maxFutureTimeTolerance)
	}

	return nil
}

// ValidateBatch 批量验证ID
// 实现core.IDValidator接口
func (v *Validator) ValidateBatch(ids []int64) error {
	if ids == nil {
		return fmt.Errorf("ids slice cannot be nil")
	}

	// 空切片视为有效（边界情况处理）
	if len(ids) == 0 {
		return nil
	}

	// 逐个验证，遇到第一个错误立即返回
	for i, id := range ids {
		if err := v.Validate(id); err != nil {
			return fmt.Errorf("invalid ID at index %d: %w", i, err)
		}
	}

	return nil
}
