// Package model 定义值班排班引擎的核心数据模型
package model

import (
	"sort"

	"github.com/google/uuid"
)

// Assignment 一条分配记录：某日某人上某岗位
type Assignment struct {
	ID      uuid.UUID `json:"id"`
	Date    string    `json:"date"` // YYYY-MM-DD
	Person  string    `json:"person"`
	Station string    `json:"station"`
}

// NewAssignment 创建分配记录
func NewAssignment(date, person, station string) *Assignment {
	return &Assignment{
		ID:      uuid.New(),
		Date:    date,
		Person:  person,
		Station: station,
	}
}

// Schedule 排班结果
// 求解期间由求解器独占填充，完成后以只读方式交给验证器与渲染器
type Schedule struct {
	Assignments []*Assignment `json:"assignments"`
}

// NewSchedule 创建空排班结果
func NewSchedule() *Schedule {
	return &Schedule{Assignments: make([]*Assignment, 0)}
}

// Add 追加分配记录
func (s *Schedule) Add(a *Assignment) {
	s.Assignments = append(s.Assignments, a)
}

// StationDay 某日某岗位的人员列表
type StationDay struct {
	Station string   `json:"station"`
	People  []string `json:"people"`
}

// DaySchedule 某日的排班
type DaySchedule struct {
	Date     string       `json:"date"`
	Stations []StationDay `json:"stations"`
}

// ByDay 返回按日期有序的分组视图
// 岗位顺序遵循 stationOrder；视图中仅出现有分配的岗位
func (s *Schedule) ByDay(stationOrder []string) []DaySchedule {
	byDate := make(map[string]map[string][]string)
	for _, a := range s.Assignments {
		if byDate[a.Date] == nil {
			byDate[a.Date] = make(map[string][]string)
		}
		byDate[a.Date][a.Station] = append(byDate[a.Date][a.Station], a.Person)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	result := make([]DaySchedule, 0, len(dates))
	for _, d := range dates {
		day := DaySchedule{Date: d}
		for _, st := range stationOrder {
			people := byDate[d][st]
			if len(people) == 0 {
				continue
			}
			sort.Strings(people)
			day.Stations = append(day.Stations, StationDay{Station: st, People: people})
		}
		result = append(result, day)
	}
	return result
}

// PersonDays 返回每人的总值班天数（只含出现在结果中的人）
func (s *Schedule) PersonDays() map[string]int {
	result := make(map[string]int)
	for _, a := range s.Assignments {
		result[a.Person]++
	}
	return result
}
