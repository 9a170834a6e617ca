// Package model 定义值班排班引擎的核心数据模型
package model

import "github.com/paiban/zhiban/pkg/errors"

// Need 岗位人力需求状态
type Need string

const (
	NeedBelowMin  Need = "below_min" // 未达最低人数
	NeedSatisfied Need = "satisfied" // 已满足最低人数，仍可加人
	NeedAtMax     Need = "at_max"    // 已达最高人数
)

// Station 值班岗位
// 每日人数要求在整个周期内恒定（本范围不支持按日变化）
type Station struct {
	Name     string `json:"name"`
	MinStaff int    `json:"min_staff"`
	MaxStaff int    `json:"max_staff"`
}

// Need 根据当前已分配人数返回需求状态
// 驱动求解器的逐岗终止判断：below_min 时必须继续分配，at_max 时禁止再分配
func (s *Station) Need(current int) Need {
	if current < s.MinStaff {
		return NeedBelowMin
	}
	if current >= s.MaxStaff {
		return NeedAtMax
	}
	return NeedSatisfied
}

// Validate 校验人数范围
func (s *Station) Validate() error {
	if s.Name == "" {
		return errors.Config("station", "岗位名称不能为空")
	}
	if s.MinStaff < 0 {
		return errors.Config("station."+s.Name, "min_staff 不能为负数: %d", s.MinStaff)
	}
	if s.MinStaff > s.MaxStaff {
		return errors.Config("station."+s.Name, "min_staff (%d) 不能大于 max_staff (%d)", s.MinStaff, s.MaxStaff)
	}
	return nil
}
