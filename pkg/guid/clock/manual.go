package clock

import "sync/atomic"

// Manual 手动控制的时钟源
// 用途：测试中模拟时间停滞、推进和回拨
type Manual struct {
	ms atomic.Int64
}

// NewManual 创建手动时钟源，起始于指定的Unix毫秒时间戳
func NewManual(startMillis int64) *Manual {
	m := &Manual{}
	m.ms.Store(startMillis)
	return m
}

// NowMillis 实现Source接口
func (m *Manual) NowMillis() int64 {
	return m.ms.Load()
}

// Set 设置当前时间戳
// 说明：允许设置为更早的值，用于模拟时钟回拨
func (m *Manual) Set(millis int64) {
	m.ms.Store(millis)
}

// Advance 向前推进指定毫秒数
func (m *Manual) Advance(deltaMillis int64) {
	m.ms.Add(deltaMillis)
}
