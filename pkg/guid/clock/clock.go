package clock

import "time"

// Source 时钟源抽象
// 说明：返回Unix毫秒时间戳，通常单调递增但不保证
// （NTP校正、系统时间调整都可能使其回退，回拨由生成器处理，不在此层检测）
type Source interface {
	// NowMillis 获取当前Unix毫秒时间戳
	NowMillis() int64
}

// System 系统时钟源（默认实现）
// 说明：无状态，纯读取，可以安全共享
type System struct{}

// NewSystem 创建系统时钟源
func NewSystem() Source {
	return System{}
}

// NowMillis 实现Source接口
func (System) NowMillis() int64 {
	return time.Now().UnixMilli()
}
