package fairness

import (
	"testing"

	"github.com/paiban/zhiban/pkg/model"
)

func TestCounters_Record(t *testing.T) {
	c := NewCounters()
	c.Record("张三", "2026-03-02", "前台")
	c.Record("张三", "2026-03-03", "前台")
	c.Record("李四", "2026-03-02", "机房")

	if c.TotalDays("张三") != 2 {
		t.Errorf("张三 TotalDays = %d, expected 2", c.TotalDays("张三"))
	}
	if c.TotalDays("李四") != 1 {
		t.Errorf("李四 TotalDays = %d, expected 1", c.TotalDays("李四"))
	}
	if c.TotalDays("王五") != 0 {
		t.Errorf("未记录人员 TotalDays = %d, expected 0", c.TotalDays("王五"))
	}

	// 2026-03-02 与 2026-03-03 同属一周
	if got := c.WeekStationCount("张三", "2026-03-04", "前台"); got != 2 {
		t.Errorf("周内同岗位次数 = %d, expected 2", got)
	}
	// 下一周从零开始
	if got := c.WeekStationCount("张三", "2026-03-09", "前台"); got != 0 {
		t.Errorf("下周同岗位次数 = %d, expected 0", got)
	}
}

func TestCounters_Spread(t *testing.T) {
	c := NewCounters()
	c.Record("张三", "2026-03-01", "前台")
	c.Record("张三", "2026-03-02", "前台")
	c.Record("李四", "2026-03-01", "机房")

	if got := c.Spread([]string{"张三", "李四"}); got != 1 {
		t.Errorf("Spread = %d, expected 1", got)
	}
	// 未上班的人计 0 天
	if got := c.Spread([]string{"张三", "王五"}); got != 2 {
		t.Errorf("Spread = %d, expected 2", got)
	}
	if got := c.Spread(nil); got != 0 {
		t.Errorf("空列表 Spread = %d, expected 0", got)
	}
}

func TestPriorityKey_Less(t *testing.T) {
	tests := []struct {
		name     string
		a, b     PriorityKey
		expected bool
	}{
		{"天数少者优先", PriorityKey{TotalDays: 1, Name: "b"}, PriorityKey{TotalDays: 2, Name: "a"}, true},
		{"天数相同看周重复", PriorityKey{TotalDays: 1, WeekRepeats: 0, Name: "b"}, PriorityKey{TotalDays: 1, WeekRepeats: 1, Name: "a"}, true},
		{"全相同看姓名", PriorityKey{TotalDays: 1, Name: "a"}, PriorityKey{TotalDays: 1, Name: "b"}, true},
		{"完全相同不为先", PriorityKey{TotalDays: 1, Name: "a"}, PriorityKey{TotalDays: 1, Name: "a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.expected {
				t.Errorf("Less() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCounters_Rank(t *testing.T) {
	c := NewCounters()
	c.Record("张三", "2026-03-01", "前台")
	c.Record("张三", "2026-03-02", "前台")
	c.Record("李四", "2026-03-01", "机房")

	people := []*model.Person{
		{Name: "张三", Eligibility: model.AllowAll()},
		{Name: "李四", Eligibility: model.AllowAll()},
		{Name: "王五", Eligibility: model.AllowAll()},
	}

	ranked := c.Rank(people, "2026-03-03", "前台")
	if ranked[0].Name != "王五" || ranked[1].Name != "李四" || ranked[2].Name != "张三" {
		t.Errorf("排序错误: %s, %s, %s", ranked[0].Name, ranked[1].Name, ranked[2].Name)
	}

	// 原切片不被修改
	if people[0].Name != "张三" {
		t.Error("Rank() 不应修改原切片")
	}
}

func TestCounters_RankNameTiebreak(t *testing.T) {
	c := NewCounters()
	people := []*model.Person{
		{Name: "丙", Eligibility: model.AllowAll()},
		{Name: "甲", Eligibility: model.AllowAll()},
		{Name: "乙", Eligibility: model.AllowAll()},
	}

	ranked := c.Rank(people, "2026-03-01", "前台")
	// 计数全为零时按姓名字典序
	if !(ranked[0].Name < ranked[1].Name && ranked[1].Name < ranked[2].Name) {
		t.Errorf("姓名兜底排序错误: %s, %s, %s", ranked[0].Name, ranked[1].Name, ranked[2].Name)
	}
}
