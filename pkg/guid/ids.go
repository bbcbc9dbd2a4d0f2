package guid

import "fmt"

const (
	// maxSliceLength 最大切片长度
	// 说明：限制切片和集合大小，防止内存耗尽
	maxSliceLength = 1_000_000
)

// IDSlice ID切片类型
//
// 特性：
//   - 支持类型转换（int64切片、字符串切片）
//   - 支持集合操作（包含、去重、过滤）
//   - 支持批量验证
type IDSlice []ID

// NewIDSlice 创建新的ID切片
// 说明：创建切片的副本，避免外部修改影响
func NewIDSlice(ids ...ID) IDSlice {
	if ids == nil {
		return IDSlice{}
	}
	// 长度限制：防止内存耗尽
	if len(ids) > maxSliceLength {
		ids = ids[:maxSliceLength]
	}
	result := make(IDSlice, len(ids))
	copy(result, ids)
	return result
}

// Int64Slice 转换为int64切片
func (ids IDSlice) Int64Slice() []int64 {
	result := make([]int64, len(ids))
	for i, id := range ids {
		result[i] = id.Int64()
	}
	return result
}

// StringSlice 转换为字符串切片
func (ids IDSlice) StringSlice() []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = id.String()
	}
	return result
}

// Contains 检查是否包含指定ID
// 说明：线性查找，时间复杂度O(n)
func (ids IDSlice) Contains(id ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Len 返回切片长度
func (ids IDSlice) Len() int {
	return len(ids)
}

// IsEmpty 检查切片是否为空
func (ids IDSlice) IsEmpty() bool {
	return len(ids) == 0
}

// Deduplicate 去重（保持原有顺序）
func (ids IDSlice) Deduplicate() IDSlice {
	if len(ids) == 0 {
		return IDSlice{} // 返回新的空切片而不是原切片引用
	}

	seen := make(map[ID]bool, len(ids))
	result := make(IDSlice, 0, len(ids))

	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}

	return result
}

// Filter 过滤ID
func (ids IDSlice) Filter(predicate func(ID) bool) IDSlice {
	if predicate == nil {
		// predicate为nil时，返回原切片的副本
		result := make(IDSlice, len(ids))
		copy(result, ids)
		return result
	}

	result := make(IDSlice, 0, len(ids))
	for _, id := range ids {
		if predicate(id) {
			result = append(result, id)
		}
	}
	return result
}

// ValidateAll 验证切片中所有ID的有效性（使用DefaultEpoch）
func (ids IDSlice) ValidateAll() error {
	for i, id := range ids {
		if err := Validate(id); err != nil {
			return fmt.Errorf("invalid ID at index %d: %w", i, err)
		}
	}
	return nil
}

// IDSet ID集合类型
//
// 特性：
//   - 自动去重（map的天然特性）
//   - 高效查找（O(1)时间复杂度）
type IDSet map[ID]struct{}

// NewIDSet 创建新的ID集合
// 说明：从可变参数列表创建集合，自动去重
func NewIDSet(ids ...ID) IDSet {
	if ids == nil {
		return make(IDSet)
	}

	// 长度限制：防止内存耗尽
	if len(ids) > maxSliceLength {
		ids = ids[:maxSliceLength]
	}

	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Add 添加ID到集合
func (s IDSet) Add(id ID) {
	// 容量限制：防止内存耗尽
	if len(s) >= maxSliceLength {
		return
	}
	s[id] = struct{}{}
}

// Remove 从集合中移除ID
func (s IDSet) Remove(id ID) {
	delete(s, id)
}

// Contains 检查集合是否包含指定ID
func (s IDSet) Contains(id ID) bool {
	_, exists := s[id]
	return exists
}

// Size 获取集合大小
func (s IDSet) Size() int {
	return len(s)
}

// ToSlice 转换为ID切片
func (s IDSet) ToSlice() IDSlice {
	result := make(IDSlice, 0, len(s))
	for id := range s {
		result = append(result, id)
	}
	return result
}
