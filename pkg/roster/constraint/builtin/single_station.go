// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/paiban/zhiban/pkg/model"
	"github.com/paiban/zhiban/pkg/roster/constraint"
)

// SingleStationConstraint 一人一天一岗约束
type SingleStationConstraint struct {
	*BaseConstraint
}

// NewSingleStationConstraint 创建一人一天一岗约束
func NewSingleStationConstraint() *SingleStationConstraint {
	return &SingleStationConstraint{
		BaseConstraint: NewBaseConstraint(
			"一人一天一岗",
			constraint.TypeSingleStation,
			constraint.CategoryHard,
			100,
		),
	}
}

// Evaluate 评估整个排班
func (c *SingleStationConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0

	seen := make(map[string]bool) // key: date|person
	for _, a := range ctx.Assignments {
		key := a.Date + "|" + a.Person
		if seen[key] {
			penalty := c.Weight()
			totalPenalty += penalty
			violations = append(violations, c.CreateViolation(
				a.Person, a.Station, a.Date,
				fmt.Sprintf("人员 %s 在 %s 出现多条分配", a.Person, a.Date),
				penalty,
			))
			continue
		}
		seen[key] = true
	}

	return len(violations) == 0, totalPenalty, violations
}

// EvaluateAssignment 评估单个候选分配
func (c *SingleStationConstraint) EvaluateAssignment(ctx *constraint.Context, a *model.Assignment) (bool, int) {
	if existing := ctx.PersonAssignedOn(a.Person, a.Date); existing != nil {
		return false, c.Weight()
	}
	return true, 0
}
