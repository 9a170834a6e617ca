// Package constraint 定义约束接口和管理器
package constraint

import (
	"github.com/paiban/zhiban/pkg/model"
)

// Context 排班上下文
// 求解期间承载计划输入与当前结果，约束通过索引查询判断
type Context struct {
	// 输入数据
	Plan *model.Plan `json:"plan"`
	Days []string    `json:"days"` // 有序工作日列表

	// 当前排班结果
	Assignments []*model.Assignment `json:"assignments"`

	// 索引缓存
	personMap       map[string]*model.Person
	stationMap      map[string]*model.Station
	byPerson        map[string][]*model.Assignment
	byDate          map[string][]*model.Assignment
	stationDayCount map[string]int // key: date|station

	// 额外配置
	Config map[string]interface{} `json:"config,omitempty"`
}

// NewContext 创建排班上下文
func NewContext(plan *model.Plan, days []string) *Context {
	c := &Context{
		Plan:            plan,
		Days:            days,
		Assignments:     make([]*model.Assignment, 0),
		personMap:       make(map[string]*model.Person),
		stationMap:      make(map[string]*model.Station),
		byPerson:        make(map[string][]*model.Assignment),
		byDate:          make(map[string][]*model.Assignment),
		stationDayCount: make(map[string]int),
		Config:          make(map[string]interface{}),
	}
	for _, p := range plan.People {
		c.personMap[p.Name] = p
	}
	for _, s := range plan.Stations {
		c.stationMap[s.Name] = s
	}
	return c
}

// AddAssignment 添加分配
func (c *Context) AddAssignment(a *model.Assignment) {
	c.Assignments = append(c.Assignments, a)
	c.byPerson[a.Person] = append(c.byPerson[a.Person], a)
	c.byDate[a.Date] = append(c.byDate[a.Date], a)
	c.stationDayCount[a.Date+"|"+a.Station]++
}

// SetAssignments 整体替换分配并重建索引
func (c *Context) SetAssignments(assignments []*model.Assignment) {
	c.Assignments = assignments
	c.byPerson = make(map[string][]*model.Assignment)
	c.byDate = make(map[string][]*model.Assignment)
	c.stationDayCount = make(map[string]int)
	for _, a := range assignments {
		c.byPerson[a.Person] = append(c.byPerson[a.Person], a)
		c.byDate[a.Date] = append(c.byDate[a.Date], a)
		c.stationDayCount[a.Date+"|"+a.Station]++
	}
}

// GetPerson 获取人员
func (c *Context) GetPerson(name string) *model.Person {
	return c.personMap[name]
}

// GetStation 获取岗位
func (c *Context) GetStation(name string) *model.Station {
	return c.stationMap[name]
}

// PersonAssignments 获取某人的所有分配
func (c *Context) PersonAssignments(person string) []*model.Assignment {
	return c.byPerson[person]
}

// DateAssignments 获取某日的所有分配
func (c *Context) DateAssignments(date string) []*model.Assignment {
	return c.byDate[date]
}

// StationCount 获取某日某岗位的已分配人数
func (c *Context) StationCount(date, station string) int {
	return c.stationDayCount[date+"|"+station]
}

// PersonAssignedOn 获取某人某日的分配（无则返回 nil）
func (c *Context) PersonAssignedOn(person, date string) *model.Assignment {
	for _, a := range c.byPerson[person] {
		if a.Date == date {
			return a
		}
	}
	return nil
}

// PersonDays 获取某人的总值班天数
func (c *Context) PersonDays(person string) int {
	return len(c.byPerson[person])
}

// PersonWeekStationCount 获取某人在某 ISO 周内上某岗位的次数
func (c *Context) PersonWeekStationCount(person, week, station string) int {
	count := 0
	for _, a := range c.byPerson[person] {
		if a.Station == station && model.WeekKey(a.Date) == week {
			count++
		}
	}
	return count
}

// ConfigBool 读取布尔配置
func (c *Context) ConfigBool(key string, defaultVal bool) bool {
	if v, ok := c.Config[key].(bool); ok {
		return v
	}
	return defaultVal
}

// ConfigInt 读取整数配置
func (c *Context) ConfigInt(key string, defaultVal int) int {
	switch v := c.Config[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return defaultVal
}
