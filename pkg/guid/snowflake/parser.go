package snowflake

import (
	"fmt"
	"time"

	"katydid-common-guid/pkg/guid/core"
	"katydid-common-guid/pkg/guid/layout"
)

// Parser Snowflake ID解析器
// 说明：解析结果中的时间戳依赖生成时使用的Epoch，
// 因此解析器与生成器共享同一个Epoch配置
type Parser struct {
	epoch     int64            // 起始时间戳（Unix毫秒）
	validator core.IDValidator // 验证器，用于解析前验证ID有效性
}

// NewParser 创建新的解析器实例
// 说明：epochMillis非正时使用DefaultEpoch
func NewParser(epochMillis int64) *Parser {
	if epochMillis <= 0 {
		epochMillis = DefaultEpoch
	}
	return &Parser{
		epoch:     epochMillis,
		validator: NewValidator(epochMillis),
	}
}

// Parse 解析Snowflake ID，提取完整的元信息
// 实现core.IDParser接口
func (p *Parser) Parse(id int64) (*core.IDInfo, error) {
	// 步骤1：先验证ID的有效性
	// 说明：只解析有效的ID，避免返回错误的元信息
	if err := p.validator.Validate(id); err != nil {
		return nil, fmt.Errorf("invalid snowflake ID: %w", err)
	}

	// 步骤2：位运算解包各字段
	fields := layout.Decode(id)

	// 步骤3：返回完整信息（时间戳差值加上Epoch还原为Unix毫秒）
	return &core.IDInfo{
		ID:           id,
		Timestamp:    fields.TimestampDelta + p.epoch,
		DatacenterID: fields.DatacenterID,
		WorkerID:     fields.WorkerID,
		Sequence:     fields.Sequence,
	}, nil
}

// ExtractTimestamp 从Snowflake ID中提取时间戳（Unix毫秒）
// 实现core.IDParser接口
func (p *Parser) ExtractTimestamp(id int64) int64 {
	// 快速失败：无效ID直接返回0
	if id <= 0 {
		return 0
	}
	return layout.Decode(id).TimestampDelta + p.epoch
}

// ExtractTimestampAsTime 从Snowflake ID中提取时间戳并转换为time.Time
func (p *Parser) ExtractTimestampAsTime(id int64) time.Time {
	timestamp := p.ExtractTimestamp(id)
	// 无效时间戳返回零值时间
	if timestamp <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(timestamp)
}

// ExtractDatacenterID 从Snowflake ID中提取数据中心ID
// 实现core.IDParser接口
func (p *Parser) ExtractDatacenterID(id int64) int64 {
	// 快速失败：无效ID返回-1
	if id <= 0 {
		return -1
	}
	return layout.Decode(id).DatacenterID
}

// ExtractWorkerID 从Snowflake ID中提取工作机器ID
// 实现core.IDParser接口
func (p *Parser) ExtractWorkerID(id int64) int64 {
	// 快速失败：无效ID返回-1
	if id <= 0 {
		return -1
	}
	return layout.Decode(id).WorkerID
}

// ExtractSequence 从Snowflake ID中提取序列号
// 实现core.IDParser接口
func (p *Parser) ExtractSequence(id int64) int64 {
	// 快速失败：无效ID返回-1
	if id <= 0 {
		return -1
	}
	return layout.Decode(id).Sequence
}

// ParseSnowflakeID 全局解析函数（使用DefaultEpoch）
func ParseSnowflakeID(id int64) (timestamp int64, datacenterID int64, workerID int64, sequence int64) {
	if id <= 0 {
		return 0, -1, -1, -1
	}
	fields := layout.Decode(id)
	return fields.TimestampDelta + DefaultEpoch, fields.DatacenterID, fields.WorkerID, fields.Sequence
}

// GetTimestamp 全局时间戳提取函数（使用DefaultEpoch）
func GetTimestamp(id int64) time.Time {
	return NewParser(DefaultEpoch).ExtractTimestampAsTime(id)
}
