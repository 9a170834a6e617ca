// Package fairness 提供公平性计数与候选排序
//
// 这是启发式的公平引导，不是精确的均衡算法：计数器在每次分配后立即更新，
// 仅用于候选排序，永远不会推翻硬约束
package fairness

import (
	"sort"

	"github.com/paiban/zhiban/pkg/model"
)

// Counters 公平性计数器
// 跨天共享的显式状态：随逐日构建传递，而不是隐式全局变量
type Counters struct {
	totalDays   map[string]int // 每人的累计值班天数
	weekStation map[string]int // key: person|week|station
}

// NewCounters 创建计数器
func NewCounters() *Counters {
	return &Counters{
		totalDays:   make(map[string]int),
		weekStation: make(map[string]int),
	}
}

// Record 记录一次分配（分配后立即调用）
func (c *Counters) Record(person, date, station string) {
	c.totalDays[person]++
	c.weekStation[person+"|"+model.WeekKey(date)+"|"+station]++
}

// TotalDays 返回某人的累计值班天数
func (c *Counters) TotalDays(person string) int {
	return c.totalDays[person]
}

// WeekStationCount 返回某人在某日所在周内上某岗位的次数
func (c *Counters) WeekStationCount(person, date, station string) int {
	return c.weekStation[person+"|"+model.WeekKey(date)+"|"+station]
}

// Spread 返回给定人员的天数极差（最多减最少）
func (c *Counters) Spread(people []string) int {
	if len(people) == 0 {
		return 0
	}
	minDays, maxDays := -1, 0
	for _, p := range people {
		days := c.totalDays[p]
		if minDays < 0 || days < minDays {
			minDays = days
		}
		if days > maxDays {
			maxDays = days
		}
	}
	return maxDays - minDays
}

// PriorityKey 候选排序键
// 依次比较：累计天数升序、本周该岗位次数升序、姓名字典序（稳定兜底）
type PriorityKey struct {
	TotalDays   int
	WeekRepeats int
	Name        string
}

// Key 计算某人对某日某岗位的排序键
func (c *Counters) Key(person, date, station string) PriorityKey {
	return PriorityKey{
		TotalDays:   c.TotalDays(person),
		WeekRepeats: c.WeekStationCount(person, date, station),
		Name:        person,
	}
}

// Less 判断排序键先后
func (k PriorityKey) Less(other PriorityKey) bool {
	if k.TotalDays != other.TotalDays {
		return k.TotalDays < other.TotalDays
	}
	if k.WeekRepeats != other.WeekRepeats {
		return k.WeekRepeats < other.WeekRepeats
	}
	return k.Name < other.Name
}

// Rank 按排序键对候选人员排序（升序，优先者在前）
func (c *Counters) Rank(people []*model.Person, date, station string) []*model.Person {
	ranked := make([]*model.Person, len(people))
	copy(ranked, people)
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.Key(ranked[i].Name, date, station).Less(c.Key(ranked[j].Name, date, station))
	})
	return ranked
}
