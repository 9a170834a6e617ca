// Package calendar 提供工作日枚举
package calendar

import (
	"sort"

	"github.com/paiban/zhiban/pkg/model"
)

// WorkingDays 枚举周期内的工作日序列（有序、剔除节假日）
// 纯函数，结果确定；请求的日超出当月范围时返回 ConfigError
func WorkingDays(period model.Period, holidays model.DateSet) ([]string, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	days := period.Days
	if len(days) == 0 {
		// 未指定日列表时排整月
		last := period.DaysInMonth()
		days = make([]int, 0, last)
		for d := 1; d <= last; d++ {
			days = append(days, d)
		}
	} else {
		days = normalize(days)
	}

	result := make([]string, 0, len(days))
	for _, d := range days {
		date := period.Date(d)
		if holidays.Contains(date) {
			continue
		}
		result = append(result, date)
	}
	return result, nil
}

// normalize 去重并升序排列
func normalize(days []int) []int {
	seen := make(map[int]bool, len(days))
	result := make([]int, 0, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true
		result = append(result, d)
	}
	sort.Ints(result)
	return result
}
