package layout

import (
	"fmt"

	"katydid-common-guid/pkg/guid/core"
)

const (
	// 位数分配
	TimestampBits    = 41 // 时间戳差值位数
	DatacenterIDBits = 5  // 数据中心ID位数
	WorkerIDBits     = 5  // 工作机器ID位数
	SequenceBits     = 12 // 序列号位数

	// 最大值计算(切记不是个数)
	MaxTimestampDelta int64 = 1<<TimestampBits - 1          // 2^41 - 1，约69年
	MaxDatacenterID         = -1 ^ (-1 << DatacenterIDBits) // 31 (2^5 - 1) [0, 31]
	MaxWorkerID             = -1 ^ (-1 << WorkerIDBits)     // 31 (2^5 - 1) [0, 31]
	MaxSequence             = -1 ^ (-1 << SequenceBits)     // 4095 (2^12 - 1) [0, 4095]

	// 位移量
	WorkerIDShift     = SequenceBits                                   // 12
	DatacenterIDShift = SequenceBits + WorkerIDBits                    // 17
	TimestampShift    = SequenceBits + WorkerIDBits + DatacenterIDBits // 22
)

// Fields ID各字段的解包结果
type Fields struct {
	TimestampDelta int64 // 相对Epoch的毫秒差值
	DatacenterID   int64 // 数据中心ID（0-31）
	WorkerID       int64 // 工作机器ID（0-31）
	Sequence       int64 // 序列号（0-4095）
}

// Encode 将四个字段打包为63位非负ID
// ID结构：时间戳差值(41位) | 数据中心ID(5位) | 工作机器ID(5位) | 序列号(12位)
// 说明：任一字段越界时返回错误，保证输出ID符号位恒为0
func Encode(timestampDelta, datacenterID, workerID, sequence int64) (int64, error) {
	if timestampDelta < 0 || timestampDelta > MaxTimestampDelta {
		return 0, fmt.Errorf("%w: timestamp delta %d out of range [0, %d]",
			core.ErrTimestampOverflow, timestampDelta, MaxTimestampDelta)
	}
	if datacenterID < 0 || datacenterID > MaxDatacenterID {
		return 0, fmt.Errorf("%w: got %d, valid range [0, %d]",
			core.ErrInvalidDatacenterID, datacenterID, MaxDatacenterID)
	}
	if workerID < 0 || workerID > MaxWorkerID {
		return 0, fmt.Errorf("%w: got %d, valid range [0, %d]",
			core.ErrInvalidWorkerID, workerID, MaxWorkerID)
	}
	if sequence < 0 || sequence > MaxSequence {
		return 0, fmt.Errorf("%w: got %d, valid range [0, %d]",
			core.ErrInvalidSequence, sequence, MaxSequence)
	}

	id := (timestampDelta << TimestampShift) |
		(datacenterID << DatacenterIDShift) |
		(workerID << WorkerIDShift) |
		sequence

	return id, nil
}

// Decode 将ID解包为四个字段
// 说明：纯位运算，对任意63位非负输入都有定义（掩码是全函数）；
// 对Encode的输出无损可逆，对外部来源的值不承担唯一性语义
func Decode(id int64) Fields {
	return Fields{
		TimestampDelta: (id >> TimestampShift) & MaxTimestampDelta,
		DatacenterID:   (id >> DatacenterIDShift) & MaxDatacenterID,
		WorkerID:       (id >> WorkerIDShift) & MaxWorkerID,
		Sequence:       id & MaxSequence,
	}
}
