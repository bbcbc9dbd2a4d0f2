package snowflake

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"katydid-common-guid/pkg/guid/clock"
	"katydid-common-guid/pkg/guid/core"
	"katydid-common-guid/pkg/guid/layout"
)

// testEpoch 2020-01-01 00:00:00 UTC
const testEpoch int64 = 1577836800000

// scriptedClock 按脚本顺序返回时间戳的时钟源
// 说明：脚本耗尽后停留在最后一个值，用于模拟反复抖动的时钟
type scriptedClock struct {
	mu     sync.Mutex
	values []int64
	idx    int
}

func newScriptedClock(values ...int64) *scriptedClock {
	return &scriptedClock{values: values}
}

func (c *scriptedClock) NowMillis() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.idx < len(c.values)-1 {
		v := c.values[c.idx]
		c.idx++
		return v
	}
	return c.values[len(c.values)-1]
}

// TestNew 测试创建Snowflake生成器
func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		datacenterID int64
		workerID     int64
		wantErr      bool
	}{
		{"有效参数_最小值", 0, 0, false},
		{"有效参数_最大值", 31, 31, false},
		{"有效参数_中间值", 15, 15, false},
		{"无效WorkerID_负数", 1, -1, true},
		{"无效WorkerID_超出", 1, 32, true},
		{"无效DatacenterID_负数", -1, 1, true},
		{"无效DatacenterID_超出", 32, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := New(tt.datacenterID, tt.workerID)
			if tt.wantErr {
				if err == nil {
					t.Error("期望得到错误，但没有返回错误")
				}
			} else {
				if err != nil {
					t.Errorf("不期望错误，但得到: %v", err)
					return
				}
				if gen == nil {
					t.Error("生成器不应为nil")
				}
			}
		})
	}
}

// TestNewWithConfig 测试使用配置创建
func TestNewWithConfig(t *testing.T) {
	t.Run("有效配置", func(t *testing.T) {
		config := &Config{
			DatacenterID:  1,
			WorkerID:      2,
			EpochMillis:   testEpoch,
			EnableMetrics: true,
		}

		gen, err := NewWithConfig(config)
		if err != nil {
			t.Fatalf("创建失败: %v", err)
		}
		if gen.GetDatacenterID() != 1 {
			t.Errorf("DatacenterID = %d, 期望 1", gen.GetDatacenterID())
		}
		if gen.GetWorkerID() != 2 {
			t.Errorf("WorkerID = %d, 期望 2", gen.GetWorkerID())
		}
		if gen.GetEpoch() != testEpoch {
			t.Errorf("Epoch = %d, 期望 %d", gen.GetEpoch(), testEpoch)
		}
	})

	t.Run("nil配置", func(t *testing.T) {
		_, err := NewWithConfig(nil)
		if !errors.Is(err, core.ErrNilConfig) {
			t.Errorf("错误类型 = %v, 期望 ErrNilConfig", err)
		}
	})

	t.Run("Epoch晚于当前时间", func(t *testing.T) {
		_, err := NewWithConfig(&Config{
			DatacenterID: 0,
			WorkerID:     0,
			EpochMillis:  time.Now().UnixMilli() + 3600_000,
		})
		if !errors.Is(err, core.ErrInvalidEpoch) {
			t.Errorf("错误类型 = %v, 期望 ErrInvalidEpoch", err)
		}
	})

	t.Run("Epoch为负数", func(t *testing.T) {
		_, err := NewWithConfig(&Config{EpochMillis: -1})
		if !errors.Is(err, core.ErrInvalidEpoch) {
			t.Errorf("错误类型 = %v, 期望 ErrInvalidEpoch", err)
		}
	})

	t.Run("容忍时间超出上限", func(t *testing.T) {
		_, err := NewWithConfig(&Config{
			ClockBackwardStrategy:  core.StrategyWait,
			ClockBackwardTolerance: 5000,
		})
		if err == nil {
			t.Error("期望得到错误，但没有返回错误")
		}
	})

	t.Run("不修改调用方配置", func(t *testing.T) {
		config := &Config{DatacenterID: 1, WorkerID: 1}
		if _, err := NewWithConfig(config); err != nil {
			t.Fatal(err)
		}
		if config.EpochMillis != 0 || config.Clock != nil {
			t.Error("调用方配置对象不应被修改")
		}
	})
}

// TestNextID 测试ID生成的唯一性（顺序调用）
func TestNextID(t *testing.T) {
	gen, err := New(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	ids := make(map[int64]bool)
	count := 10000

	for i := 0; i < count; i++ {
		id, err := gen.NextID()
		if err != nil {
			t.Fatalf("生成ID失败: %v", err)
		}
		if id <= 0 {
			t.Errorf("ID应为正数，得到: %d", id)
		}
		if ids[id] {
			t.Errorf("发现重复ID: %d", id)
		}
		ids[id] = true
	}

	if len(ids) != count {
		t.Errorf("生成了 %d 个唯一ID，期望 %d 个", len(ids), count)
	}
}

// TestNextIDMonotonic 测试顺序调用下ID严格递增
func TestNextIDMonotonic(t *testing.T) {
	gen, err := New(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	var prev int64
	for i := 0; i < 10000; i++ {
		id, err := gen.NextID()
		if err != nil {
			t.Fatalf("生成ID失败: %v", err)
		}
		if id <= prev {
			t.Fatalf("第 %d 个ID未递增: %d <= %d", i, id, prev)
		}
		prev = id
	}
}

// TestNextIDConcurrent 测试并发生成的唯一性
func TestNextIDConcurrent(t *testing.T) {
	gen, err := New(5, 5)
	if err != nil {
		t.Fatal(err)
	}

	const (
		goroutines  = 10
		idsPerGorou = 2000
	)

	var wg sync.WaitGroup
	results := make([][]int64, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			local := make([]int64, 0, idsPerGorou)
			for i := 0; i < idsPerGorou; i++ {
				id, err := gen.NextID()
				if err != nil {
					t.Errorf("并发生成ID失败: %v", err)
					return
				}
				local = append(local, id)
			}
			results[idx] = local
		}(g)
	}
	wg.Wait()

	// 全部ID两两不同
	seen := make(map[int64]bool, goroutines*idsPerGorou)
	for _, local := range results {
		for _, id := range local {
			if seen[id] {
				t.Fatalf("并发生成中发现重复ID: %d", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != goroutines*idsPerGorou {
		t.Errorf("唯一ID数量 = %d, 期望 %d", len(seen), goroutines*idsPerGorou)
	}
}

// TestExampleScenario 测试文档化的编码示例
// epoch=2020-01-01T00:00:00Z，模拟时间epoch+1ms，datacenter=3, worker=7
func TestExampleScenario(t *testing.T) {
	clk := clock.NewManual(testEpoch + 1)
	gen, err := NewWithConfig(&Config{
		DatacenterID: 3,
		WorkerID:     7,
		EpochMillis:  testEpoch,
		Clock:        clk,
	})
	if err != nil {
		t.Fatal(err)
	}

	// 该毫秒内第一次调用 → 序列号0
	first, err := gen.NextID()
	if err != nil {
		t.Fatal(err)
	}
	want := int64(1<<22 | 3<<17 | 7<<12)
	if first != want {
		t.Errorf("第一个ID = %d, 期望 %d", first, want)
	}

	// 同一毫秒内第二次调用 → 序列号1，恰好+1
	second, err := gen.NextID()
	if err != nil {
		t.Fatal(err)
	}
	if second != want+1 {
		t.Errorf("第二个ID = %d, 期望 %d", second, want+1)
	}
}

// TestSequenceOverflow 测试序列号耗尽时等待下一毫秒
// 模拟时钟在同一毫秒返回4096次后推进1ms
func TestSequenceOverflow(t *testing.T) {
	clk := clock.NewManual(testEpoch + 100)
	gen, err := NewWithConfig(&Config{
		DatacenterID:  1,
		WorkerID:      1,
		EpochMillis:   testEpoch,
		Clock:         clk,
		EnableMetrics: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	// 耗尽该毫秒的4096个序列号（0-4095）
	var lastID int64
	for i := 0; i <= layout.MaxSequence; i++ {
		id, err := gen.NextID()
		if err != nil {
			t.Fatalf("第 %d 次生成失败: %v", i, err)
		}
		lastID = id
	}
	if seq := layout.Decode(lastID).Sequence; seq != layout.MaxSequence {
		t.Fatalf("第4096个ID的序列号 = %d, 期望 %d", seq, layout.MaxSequence)
	}
	prevDelta := layout.Decode(lastID).TimestampDelta

	// 第4097次调用必须阻塞到时钟推进之后才返回
	advanced := make(chan struct{})
	time.AfterFunc(20*time.Millisecond, func() {
		clk.Advance(1)
		close(advanced)
	})

	id, err := gen.NextID()
	if err != nil {
		t.Fatalf("溢出后生成失败: %v", err)
	}

	select {
	case <-advanced:
		// 预期路径：调用在时钟推进后才返回
	default:
		t.Error("序列号耗尽时调用在时钟推进前就返回了")
	}

	fields := layout.Decode(id)
	if fields.TimestampDelta <= prevDelta {
		t.Errorf("溢出后的时间戳差值 = %d, 期望严格大于 %d", fields.TimestampDelta, prevDelta)
	}
	if fields.Sequence != 0 {
		t.Errorf("新毫秒的序列号 = %d, 期望 0", fields.Sequence)
	}

	// 监控指标记录了一次溢出等待
	metrics := gen.GetMetrics()
	if metrics["sequence_overflow"] != 1 {
		t.Errorf("sequence_overflow = %d, 期望 1", metrics["sequence_overflow"])
	}
	if metrics["wait_count"] != 1 {
		t.Errorf("wait_count = %d, 期望 1", metrics["wait_count"])
	}
}

// TestClockBackwardStrict 测试默认策略下时钟回拨直接失败
func TestClockBackwardStrict(t *testing.T) {
	clk := clock.NewManual(testEpoch + 1000)
	gen, err := NewWithConfig(&Config{
		DatacenterID: 1,
		WorkerID:     1,
		EpochMillis:  testEpoch,
		Clock:        clk,
	})
	if err != nil {
		t.Fatal(err)
	}

	// 先成功生成一次，建立lastTimestamp
	if _, err := gen.NextID(); err != nil {
		t.Fatal(err)
	}

	// 时钟回拨10ms
	clk.Set(testEpoch + 990)

	_, err = gen.NextID()
	if !errors.Is(err, core.ErrClockMovedBackwards) {
		t.Errorf("错误类型 = %v, 期望 ErrClockMovedBackwards", err)
	}

	// 回拨条件持续存在时，再次调用仍然失败
	_, err = gen.NextID()
	if !errors.Is(err, core.ErrClockMovedBackwards) {
		t.Errorf("再次调用的错误类型 = %v, 期望 ErrClockMovedBackwards", err)
	}

	// 时钟恢复后可以继续生成
	clk.Set(testEpoch + 1001)
	if _, err := gen.NextID(); err != nil {
		t.Errorf("时钟恢复后生成失败: %v", err)
	}
}

// TestClockBackwardWaitWithinTolerance 测试等待策略下容忍范围内的回拨
func TestClockBackwardWaitWithinTolerance(t *testing.T) {
	clk := clock.NewManual(testEpoch + 1000)
	gen, err := NewWithConfig(&Config{
		DatacenterID:           1,
		WorkerID:               1,
		EpochMillis:            testEpoch,
		ClockBackwardStrategy:  core.StrategyWait,
		ClockBackwardTolerance: 10,
		Clock:                  clk,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := gen.NextID(); err != nil {
		t.Fatal(err)
	}

	// 回拨3ms，并在等待窗口内让时钟追上
	clk.Set(testEpoch + 997)
	time.AfterFunc(5*time.Millisecond, func() {
		clk.Set(testEpoch + 1001)
	})

	id, err := gen.NextID()
	if err != nil {
		t.Fatalf("容忍范围内的回拨应等待后成功，得到: %v", err)
	}
	if id <= 0 {
		t.Errorf("ID应为正数，得到: %d", id)
	}
}

// TestClockBackwardWaitRepeatedDip 测试等待策略下时钟追上后再次回拨
// 说明：等待成功后重新读取的时钟可能又一次落后于lastTimestamp，
// 此时必须继续等待而不能接受回退的时间戳，否则会重发已发出的ID
func TestClockBackwardWaitRepeatedDip(t *testing.T) {
	base := testEpoch + 1000
	// 读取顺序：构造校验、第1次、第2次、第3次（回拨→追上→再回拨→追上→稳定）
	clk := newScriptedClock(
		base,   // 构造时的Epoch校验
		base-1, // 第1次生成
		base,   // 第2次生成
		base-1, // 第3次生成：检测到回拨
		base,   // 等待中追上
		base-1, // 等待返回后的重读：再次回拨
		base,   // 第二轮等待中追上
		base,   // 稳定
	)
	gen, err := NewWithConfig(&Config{
		DatacenterID:           1,
		WorkerID:               1,
		EpochMillis:            testEpoch,
		ClockBackwardStrategy:  core.StrategyWait,
		ClockBackwardTolerance: 10,
		Clock:                  clk,
	})
	if err != nil {
		t.Fatal(err)
	}

	first, err := gen.NextID()
	if err != nil {
		t.Fatal(err)
	}
	second, err := gen.NextID()
	if err != nil {
		t.Fatal(err)
	}

	third, err := gen.NextID()
	if err != nil {
		t.Fatalf("反复回拨追上后生成失败: %v", err)
	}
	if third == first || third == second {
		t.Fatalf("重复ID: 第3个ID %d 与之前的ID相同 (%d, %d)", third, first, second)
	}
	if third <= second {
		t.Errorf("第3个ID %d 应大于第2个ID %d", third, second)
	}

	// 时钟不再落后时，第3个ID应落在lastTimestamp毫秒内的下一个序列号
	fields := layout.Decode(third)
	if fields.TimestampDelta != 1000 {
		t.Errorf("第3个ID的时间戳差值 = %d, 期望 1000", fields.TimestampDelta)
	}
	if fields.Sequence != 1 {
		t.Errorf("第3个ID的序列号 = %d, 期望 1", fields.Sequence)
	}
}

// TestClockBackwardWaitZeroTolerance 测试等待策略下显式配置零容忍
func TestClockBackwardWaitZeroTolerance(t *testing.T) {
	clk := clock.NewManual(testEpoch + 1000)
	gen, err := NewWithConfig(&Config{
		DatacenterID:           1,
		WorkerID:               1,
		EpochMillis:            testEpoch,
		ClockBackwardStrategy:  core.StrategyWait,
		ClockBackwardTolerance: 0, // 零容忍：任何回拨立即报错
		Clock:                  clk,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := gen.NextID(); err != nil {
		t.Fatal(err)
	}

	// 哪怕只回拨1ms也不等待，直接报错
	clk.Set(testEpoch + 999)
	_, err = gen.NextID()
	if !errors.Is(err, core.ErrClockMovedBackwards) {
		t.Errorf("错误类型 = %v, 期望 ErrClockMovedBackwards", err)
	}
}

// TestClockBackwardWaitExceedsTolerance 测试等待策略下超出容忍范围的回拨
func TestClockBackwardWaitExceedsTolerance(t *testing.T) {
	clk := clock.NewManual(testEpoch + 1000)
	gen, err := NewWithConfig(&Config{
		DatacenterID:           1,
		WorkerID:               1,
		EpochMillis:            testEpoch,
		ClockBackwardStrategy:  core.StrategyWait,
		ClockBackwardTolerance: 5,
		Clock:                  clk,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := gen.NextID(); err != nil {
		t.Fatal(err)
	}

	// 回拨500ms，远超容忍范围
	clk.Set(testEpoch + 500)

	_, err = gen.NextID()
	if !errors.Is(err, core.ErrClockMovedBackwards) {
		t.Errorf("错误类型 = %v, 期望 ErrClockMovedBackwards", err)
	}
}

// TestClockStalled 测试时钟停滞时等待次数耗尽返回错误
func TestClockStalled(t *testing.T) {
	clk := clock.NewManual(testEpoch + 100)
	gen, err := NewWithConfig(&Config{
		DatacenterID:        1,
		WorkerID:            1,
		EpochMillis:         testEpoch,
		SequenceWaitRetries: 5, // 极小的上限，便于测试
		Clock:               clk,
		EnableMetrics:       true,
	})
	if err != nil {
		t.Fatal(err)
	}

	// 耗尽该毫秒的序列号
	for i := 0; i <= layout.MaxSequence; i++ {
		if _, err := gen.NextID(); err != nil {
			t.Fatalf("第 %d 次生成失败: %v", i, err)
		}
	}

	// 时钟不再推进，等待次数耗尽后返回ErrClockStalled
	_, err = gen.NextID()
	if !errors.Is(err, core.ErrClockStalled) {
		t.Errorf("错误类型 = %v, 期望 ErrClockStalled", err)
	}

	// 监控指标记录了一次时钟停滞
	metrics := gen.GetMetrics()
	if metrics["clock_stalled"] != 1 {
		t.Errorf("clock_stalled = %d, 期望 1", metrics["clock_stalled"])
	}
}

// TestTimestampOverflow 测试时间戳差值越界
func TestTimestampOverflow(t *testing.T) {
	t.Run("Epoch可表示范围耗尽", func(t *testing.T) {
		clk := clock.NewManual(testEpoch + layout.MaxTimestampDelta + 1)
		gen, err := NewWithConfig(&Config{
			DatacenterID: 1,
			WorkerID:     1,
			EpochMillis:  testEpoch,
			Clock:        clk,
		})
		if err != nil {
			t.Fatal(err)
		}

		_, err = gen.NextID()
		if !errors.Is(err, core.ErrTimestampOverflow) {
			t.Errorf("错误类型 = %v, 期望 ErrTimestampOverflow", err)
		}

		// 批量路径走同一个越界检查
		ids, err := gen.NextIDBatch(5)
		if !errors.Is(err, core.ErrTimestampOverflow) {
			t.Errorf("批量错误类型 = %v, 期望 ErrTimestampOverflow", err)
		}
		if len(ids) != 0 {
			t.Errorf("越界时不应生成ID，得到 %d 个", len(ids))
		}
	})

	t.Run("时钟早于Epoch", func(t *testing.T) {
		clk := clock.NewManual(testEpoch + 10)
		gen, err := NewWithConfig(&Config{
			DatacenterID: 1,
			WorkerID:     1,
			EpochMillis:  testEpoch,
			Clock:        clk,
		})
		if err != nil {
			t.Fatal(err)
		}

		// 构造后时钟跳到Epoch之前，差值为负
		clk.Set(testEpoch - 5)
		_, err = gen.NextID()
		if !errors.Is(err, core.ErrTimestampOverflow) {
			t.Errorf("错误类型 = %v, 期望 ErrTimestampOverflow", err)
		}
	})
}

// TestNextIDString 测试十进制字符串表示
func TestNextIDString(t *testing.T) {
	clk := clock.NewManual(testEpoch + 1)
	gen, err := NewWithConfig(&Config{
		DatacenterID: 3,
		WorkerID:     7,
		EpochMillis:  testEpoch,
		Clock:        clk,
	})
	if err != nil {
		t.Fatal(err)
	}

	s, err := gen.NextIDString()
	if err != nil {
		t.Fatal(err)
	}

	want := strconv.FormatInt(int64(1<<22|3<<17|7<<12), 10)
	if s != want {
		t.Errorf("NextIDString() = %s, 期望 %s", s, want)
	}
}

// TestNextIDBatch 测试批量生成ID
func TestNextIDBatch(t *testing.T) {
	gen, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"批量生成10个", 10, false},
		{"批量生成100个", 100, false},
		{"批量生成10000个_跨毫秒", 10000, false},
		{"无效数量_负数", -1, true},
		{"无效数量_零", 0, true},
		{"无效数量_超过最大值", 150000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := gen.NextIDBatch(tt.n)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidBatchSize) {
					t.Errorf("错误类型 = %v, 期望 ErrInvalidBatchSize", err)
				}
				return
			}
			if err != nil {
				t.Errorf("不期望错误，但得到: %v", err)
				return
			}
			if len(ids) != tt.n {
				t.Errorf("生成了 %d 个ID，期望 %d 个", len(ids), tt.n)
			}

			// 检查唯一性和递增性
			idMap := make(map[int64]bool, len(ids))
			var prev int64
			for i, id := range ids {
				if idMap[id] {
					t.Errorf("发现重复ID: %d", id)
				}
				idMap[id] = true
				if id <= prev {
					t.Errorf("第 %d 个ID未递增: %d <= %d", i, id, prev)
				}
				prev = id
			}
		})
	}
}

// TestParseID 测试生成器解析自己生成的ID
func TestParseID(t *testing.T) {
	clk := clock.NewManual(testEpoch + 12345)
	gen, err := NewWithConfig(&Config{
		DatacenterID: 9,
		WorkerID:     18,
		EpochMillis:  testEpoch,
		Clock:        clk,
	})
	if err != nil {
		t.Fatal(err)
	}

	id, err := gen.NextID()
	if err != nil {
		t.Fatal(err)
	}

	info, err := gen.ParseID(id)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if info.ID != id {
		t.Errorf("ID = %d, 期望 %d", info.ID, id)
	}
	if info.Timestamp != testEpoch+12345 {
		t.Errorf("Timestamp = %d, 期望 %d", info.Timestamp, testEpoch+12345)
	}
	if info.DatacenterID != 9 {
		t.Errorf("DatacenterID = %d, 期望 9", info.DatacenterID)
	}
	if info.WorkerID != 18 {
		t.Errorf("WorkerID = %d, 期望 18", info.WorkerID)
	}
	if info.Sequence != 0 {
		t.Errorf("Sequence = %d, 期望 0", info.Sequence)
	}
}

// TestValidateID 测试生成器验证ID
func TestValidateID(t *testing.T) {
	gen, err := New(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	id, err := gen.NextID()
	if err != nil {
		t.Fatal(err)
	}
	if err := gen.ValidateID(id); err != nil {
		t.Errorf("有效ID验证失败: %v", err)
	}

	if err := gen.ValidateID(0); !errors.Is(err, core.ErrInvalidSnowflakeID) {
		t.Errorf("零值的验证错误 = %v, 期望 ErrInvalidSnowflakeID", err)
	}
	if err := gen.ValidateID(-1); !errors.Is(err, core.ErrInvalidSnowflakeID) {
		t.Errorf("负数的验证错误 = %v, 期望 ErrInvalidSnowflakeID", err)
	}
}

// TestMetrics 测试监控指标收集
func TestMetrics(t *testing.T) {
	gen, err := NewWithConfig(&Config{
		DatacenterID:  4,
		WorkerID:      4,
		EnableMetrics: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	const count = 100
	for i := 0; i < count; i++ {
		if _, err := gen.NextID(); err != nil {
			t.Fatal(err)
		}
	}

	if got := gen.GetIDCount(); got != count {
		t.Errorf("GetIDCount() = %d, 期望 %d", got, count)
	}

	metrics := gen.GetMetrics()
	if metrics["metrics_enabled"] != 1 {
		t.Error("metrics_enabled应为1")
	}
	if metrics["id_count"] != count {
		t.Errorf("id_count = %d, 期望 %d", metrics["id_count"], count)
	}

	gen.ResetMetrics()
	if got := gen.GetIDCount(); got != 0 {
		t.Errorf("重置后 GetIDCount() = %d, 期望 0", got)
	}
}

// TestMetricsDisabled 测试关闭监控时的行为
func TestMetricsDisabled(t *testing.T) {
	gen, err := New(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := gen.NextID(); err != nil {
		t.Fatal(err)
	}

	metrics := gen.GetMetrics()
	if metrics["metrics_enabled"] != 0 {
		t.Error("关闭监控时metrics_enabled应为0")
	}
	if got := gen.GetIDCount(); got != 0 {
		t.Errorf("关闭监控时 GetIDCount() = %d, 期望 0", got)
	}
}
