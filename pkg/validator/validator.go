// Package validator 提供值班表的独立校验
//
// 校验不依赖求解器自身的簿记，从最终结果重新推导每条硬约束，
// 作为对求解器缺陷的纵深防御。校验是纯函数：对同一输入重复执行
// 产生相同的报告
package validator

import (
	"fmt"
	"sort"

	"github.com/paiban/zhiban/pkg/model"
)

// Rule 硬约束规则标识
type Rule string

const (
	RuleAvailability Rule = "availability"    // 不可用日不排班
	RuleEligibility  Rule = "eligibility"     // 资格匹配
	RuleDuplicate    Rule = "duplicate"       // 一人一天一岗
	RuleCapacity     Rule = "capacity"        // 岗位人数上限
	RuleMandatory    Rule = "mandatory"       // 指定岗位在可满足时必须遵守
	RuleUnknownRef   Rule = "unknown_ref"     // 引用未知人员或岗位
)

// Violation 硬约束破坏记录
type Violation struct {
	Date    string `json:"date"`
	Rule    Rule   `json:"rule"`
	Person  string `json:"person,omitempty"`
	Station string `json:"station,omitempty"`
	Detail  string `json:"detail"`
}

// Shortfall 人力缺口记录
type Shortfall struct {
	Date      string `json:"date"`
	Station   string `json:"station"`
	Needed    int    `json:"needed"`
	Available int    `json:"available"`
	Cause     string `json:"cause"`
}

// Report 校验报告
type Report struct {
	AllSatisfied  bool           `json:"all_hard_constraints_satisfied"`
	PerPersonDays map[string]int `json:"per_person_total_days"`
	Violations    []Violation    `json:"violations"`
	Shortfalls    []Shortfall    `json:"shortfalls"`
}

// Validate 校验最终值班表
// days 为排班周期内的有序工作日列表（与求解时一致）
func Validate(schedule *model.Schedule, plan *model.Plan, days []string) *Report {
	report := &Report{
		PerPersonDays: make(map[string]int),
		Violations:    make([]Violation, 0),
		Shortfalls:    make([]Shortfall, 0),
	}

	// 每人统计：所有配置人员都出现在报告里，未值班者为 0
	for _, p := range plan.People {
		report.PerPersonDays[p.Name] = 0
	}

	// 独立重建索引
	stationCount := make(map[string]int)          // date|station
	personDates := make(map[string]map[string]string) // person -> date -> station

	for _, a := range schedule.Assignments {
		p := plan.Person(a.Person)
		st := plan.Station(a.Station)

		if p == nil || st == nil {
			report.Violations = append(report.Violations, Violation{
				Date: a.Date, Rule: RuleUnknownRef, Person: a.Person, Station: a.Station,
				Detail: fmt.Sprintf("分配引用了未知的人员或岗位: %s / %s", a.Person, a.Station),
			})
			continue
		}

		report.PerPersonDays[a.Person]++
		stationCount[a.Date+"|"+a.Station]++

		// 可用性
		if !p.IsAvailable(a.Date) {
			report.Violations = append(report.Violations, Violation{
				Date: a.Date, Rule: RuleAvailability, Person: a.Person, Station: a.Station,
				Detail: fmt.Sprintf("人员 %s 在 %s 不在岗却被排班", a.Person, a.Date),
			})
		}

		// 资格
		if !p.CanWork(a.Station) {
			report.Violations = append(report.Violations, Violation{
				Date: a.Date, Rule: RuleEligibility, Person: a.Person, Station: a.Station,
				Detail: fmt.Sprintf("人员 %s 无 %s 岗位资格却被排班", a.Person, a.Station),
			})
		}

		// 一人一天一岗
		if personDates[a.Person] == nil {
			personDates[a.Person] = make(map[string]string)
		}
		if prev, ok := personDates[a.Person][a.Date]; ok {
			report.Violations = append(report.Violations, Violation{
				Date: a.Date, Rule: RuleDuplicate, Person: a.Person, Station: a.Station,
				Detail: fmt.Sprintf("人员 %s 在 %s 被重复排班（%s 与 %s）", a.Person, a.Date, prev, a.Station),
			})
		} else {
			personDates[a.Person][a.Date] = a.Station
		}
	}

	// 人数范围：超上限为违规，未达下限为缺口
	for _, date := range days {
		for _, st := range plan.Stations {
			count := stationCount[date+"|"+st.Name]
			if count > st.MaxStaff {
				report.Violations = append(report.Violations, Violation{
					Date: date, Rule: RuleCapacity, Station: st.Name,
					Detail: fmt.Sprintf("岗位 %s 在 %s 分配 %d 人，超过上限 %d", st.Name, date, count, st.MaxStaff),
				})
			}
			if count < st.MinStaff {
				available := eligibleAvailable(plan, st.Name, date)
				report.Shortfalls = append(report.Shortfalls, Shortfall{
					Date:      date,
					Station:   st.Name,
					Needed:    st.MinStaff,
					Available: available,
					Cause:     shortfallCause(available, st.MinStaff),
				})
			}
		}
	}

	// 指定岗位：人员在岗且岗位有空位时必须在该岗位
	for _, p := range plan.People {
		if !p.HasMandatory() {
			continue
		}
		st := plan.Station(p.MandatoryStation)
		if st == nil {
			continue
		}
		for _, date := range days {
			if !p.IsAvailable(date) {
				continue
			}
			if personDates[p.Name][date] == p.MandatoryStation {
				continue
			}
			if stationCount[date+"|"+p.MandatoryStation] < st.MaxStaff {
				report.Violations = append(report.Violations, Violation{
					Date: date, Rule: RuleMandatory, Person: p.Name, Station: p.MandatoryStation,
					Detail: fmt.Sprintf("人员 %s 在 %s 未被排到指定岗位 %s（该岗位尚有空位）", p.Name, date, p.MandatoryStation),
				})
			}
		}
	}

	sortViolations(report.Violations)
	report.AllSatisfied = len(report.Violations) == 0
	return report
}

// eligibleAvailable 统计某日对某岗位可用且有资格的人数
func eligibleAvailable(plan *model.Plan, station, date string) int {
	count := 0
	for _, p := range plan.People {
		if p.IsAvailable(date) && p.CanWork(station) {
			count++
		}
	}
	return count
}

// shortfallCause 给出缺口原因描述
func shortfallCause(available, needed int) string {
	if available < needed {
		return "可用的合格人员不足"
	}
	return "合格人员被其他岗位占用"
}

// sortViolations 按日期、规则、人员稳定排序，保证报告可复现
func sortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].Date != violations[j].Date {
			return violations[i].Date < violations[j].Date
		}
		if violations[i].Rule != violations[j].Rule {
			return violations[i].Rule < violations[j].Rule
		}
		return violations[i].Person < violations[j].Person
	})
}
