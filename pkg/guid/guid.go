// Package guid 提供全局唯一、时间有序的63位ID生成能力
//
// ID由Snowflake算法生成，无需生成时协调服务；
// (datacenterID, workerID)组合的唯一性由部署配置保证。
// 包级函数使用默认生成器（datacenterID=0, workerID=0），
// 多实例部署应通过snowflake.NewWithConfig或registry创建各自的生成器。
package guid

import (
	"katydid-common-guid/pkg/guid/core"
	"katydid-common-guid/pkg/guid/registry"
	"katydid-common-guid/pkg/guid/snowflake"
)

// NextID 使用默认生成器生成下一个唯一ID
func NextID() (ID, error) {
	gen, err := registry.GetDefaultGenerator()
	if err != nil {
		return 0, err
	}
	id, err := gen.NextID()
	if err != nil {
		return 0, err
	}
	return ID(id), nil
}

// NextIDString 使用默认生成器生成下一个唯一ID的十进制字符串
func NextIDString() (string, error) {
	gen, err := registry.GetDefaultGenerator()
	if err != nil {
		return "", err
	}
	return gen.NextIDString()
}

// NextIDBatch 使用默认生成器批量生成ID
func NextIDBatch(n int) ([]ID, error) {
	gen, err := registry.GetDefaultGenerator()
	if err != nil {
		return nil, err
	}
	raw, err := gen.NextIDBatch(n)
	if err != nil {
		return nil, err
	}
	ids := make([]ID, len(raw))
	for i, v := range raw {
		ids[i] = ID(v)
	}
	return ids, nil
}

// Parse 解析ID，提取时间戳、数据中心ID、工作机器ID和序列号
// 说明：使用DefaultEpoch；自定义Epoch的ID应通过对应生成器的ParseID解析
func Parse(id ID) (*core.IDInfo, error) {
	return snowflake.NewParser(snowflake.DefaultEpoch).Parse(int64(id))
}

// Validate 验证ID的有效性（使用DefaultEpoch）
func Validate(id ID) error {
	return snowflake.ValidateID(int64(id))
}
