// Package model 定义值班排班引擎的核心数据模型
package model

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout 日期格式 (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// DateSet 日期集合
type DateSet map[string]struct{}

// NewDateSet 创建日期集合
func NewDateSet(dates ...string) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// Contains 检查集合是否包含某日期
func (s DateSet) Contains(date string) bool {
	_, ok := s[date]
	return ok
}

// Add 添加日期
func (s DateSet) Add(date string) {
	s[date] = struct{}{}
}

// Union 返回两个集合的并集
func (s DateSet) Union(other DateSet) DateSet {
	result := make(DateSet, len(s)+len(other))
	for d := range s {
		result[d] = struct{}{}
	}
	for d := range other {
		result[d] = struct{}{}
	}
	return result
}

// Sorted 返回排序后的日期列表
func (s DateSet) Sorted() []string {
	result := make([]string, 0, len(s))
	for d := range s {
		result = append(result, d)
	}
	sort.Strings(result)
	return result
}

// ParseDate 解析日期字符串
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// WeekKey 返回日期所在的 ISO 周标识（如 2025-W10）
// 周在月边界处的归属以 ISO 周为准，避免月初的重复统计断裂
func WeekKey(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}
