// Package model 定义值班排班引擎的核心数据模型
package model

import (
	"time"

	"github.com/paiban/zhiban/pkg/errors"
)

// Period 排班周期
// Days 为要排班的日（1-31）；为空时排整月
type Period struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []int `json:"days,omitempty"`
}

// Validate 校验周期
func (p *Period) Validate() error {
	if p.Year < 1970 || p.Year > 2200 {
		return errors.Config("period.year", "年份超出范围: %d", p.Year)
	}
	if p.Month < 1 || p.Month > 12 {
		return errors.Config("period.month", "月份超出范围: %d", p.Month)
	}
	last := p.DaysInMonth()
	for _, d := range p.Days {
		if d < 1 || d > last {
			return errors.Config("period.days", "日 %d 超出 %d 年 %d 月的有效范围 [1, %d]", d, p.Year, p.Month, last)
		}
	}
	return nil
}

// DaysInMonth 返回该月天数
func (p *Period) DaysInMonth() int {
	first := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// Date 返回该周期内某日的日期字符串
func (p *Period) Date(day int) string {
	return time.Date(p.Year, time.Month(p.Month), day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// Plan 排班计划（配置加载器的产物，引擎的输入）
type Plan struct {
	Period   Period     `json:"period"`
	Holidays DateSet    `json:"holidays,omitempty"`
	Stations []*Station `json:"stations"`
	People   []*Person  `json:"people"`
}

// Station 按名称查找岗位
func (p *Plan) Station(name string) *Station {
	for _, s := range p.Stations {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Person 按名称查找人员
func (p *Plan) Person(name string) *Person {
	for _, person := range p.People {
		if person.Name == name {
			return person
		}
	}
	return nil
}

// Validate 校验整个计划，引用完整性问题立即返回 ConfigError
func (p *Plan) Validate() error {
	if err := p.Period.Validate(); err != nil {
		return err
	}
	if len(p.Stations) == 0 {
		return errors.Config("stations", "至少需要一个岗位")
	}
	if len(p.People) == 0 {
		return errors.Config("people", "至少需要一名人员")
	}

	stationNames := make(map[string]bool, len(p.Stations))
	for _, s := range p.Stations {
		if err := s.Validate(); err != nil {
			return err
		}
		if stationNames[s.Name] {
			return errors.Config("stations", "岗位名称重复: %s", s.Name)
		}
		stationNames[s.Name] = true
	}

	personNames := make(map[string]bool, len(p.People))
	for _, person := range p.People {
		if person.Name == "" {
			return errors.Config("people", "人员名称不能为空")
		}
		if personNames[person.Name] {
			return errors.Config("people", "人员名称重复: %s", person.Name)
		}
		personNames[person.Name] = true

		if err := person.Eligibility.Validate(); err != nil {
			return errors.Wrap(err, errors.CodeConfig, "人员 "+person.Name+" 的资格规则无效")
		}
		for _, st := range person.Eligibility.Stations {
			if !stationNames[st] {
				return errors.Config("people."+person.Name, "资格规则引用了未知岗位: %s", st)
			}
		}
		if person.MandatoryStation != "" {
			if !stationNames[person.MandatoryStation] {
				return errors.Config("people."+person.Name, "指定岗位不存在: %s", person.MandatoryStation)
			}
			if !person.CanWork(person.MandatoryStation) {
				return errors.Config("people."+person.Name, "指定岗位 %s 与资格规则冲突", person.MandatoryStation)
			}
		}
	}

	return nil
}
