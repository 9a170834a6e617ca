// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/paiban/zhiban/pkg/model"
	"github.com/paiban/zhiban/pkg/roster/constraint"
)

// WeeklyRotationConstraint 周内岗位轮换约束（软约束）
// 同一人一周内重复上同一岗位超过阈值时产生惩罚
type WeeklyRotationConstraint struct {
	*BaseConstraint
}

// NewWeeklyRotationConstraint 创建周内岗位轮换约束
func NewWeeklyRotationConstraint() *WeeklyRotationConstraint {
	return &WeeklyRotationConstraint{
		BaseConstraint: NewBaseConstraint(
			"周内岗位轮换",
			constraint.TypeWeeklyRotation,
			constraint.CategorySoft,
			30,
		),
	}
}

// Evaluate 评估整个排班
func (c *WeeklyRotationConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	maxRepeats := c.GetConfigInt("max_repeats_per_week", 2)

	// key: person|week|station
	counts := make(map[string]int)
	for _, a := range ctx.Assignments {
		counts[a.Person+"|"+model.WeekKey(a.Date)+"|"+a.Station]++
	}

	var violations []constraint.ViolationDetail
	totalPenalty := 0

	// 按人员与岗位的声明顺序输出，保证结果确定
	for _, p := range ctx.Plan.People {
		for _, st := range ctx.Plan.Stations {
			weeks := make(map[string]bool)
			for _, a := range ctx.PersonAssignments(p.Name) {
				if a.Station != st.Name {
					continue
				}
				week := model.WeekKey(a.Date)
				if weeks[week] {
					continue
				}
				weeks[week] = true

				count := counts[p.Name+"|"+week+"|"+st.Name]
				if count <= maxRepeats {
					continue
				}
				penalty := c.Weight() * (count - maxRepeats)
				totalPenalty += penalty
				violations = append(violations, c.CreateViolation(
					p.Name, st.Name, "",
					fmt.Sprintf("人员 %s 在 %s 周内上岗位 %s 共 %d 次，超过阈值 %d", p.Name, week, st.Name, count, maxRepeats),
					penalty,
				))
			}
		}
	}

	return len(violations) == 0, totalPenalty, violations
}
