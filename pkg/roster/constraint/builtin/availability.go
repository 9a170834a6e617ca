// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/paiban/zhiban/pkg/model"
	"github.com/paiban/zhiban/pkg/roster/constraint"
)

// AvailabilityConstraint 可用性约束
// 人员在休假或节假日不排班
type AvailabilityConstraint struct {
	*BaseConstraint
}

// NewAvailabilityConstraint 创建可用性约束
func NewAvailabilityConstraint() *AvailabilityConstraint {
	return &AvailabilityConstraint{
		BaseConstraint: NewBaseConstraint(
			"人员可用性",
			constraint.TypeAvailability,
			constraint.CategoryHard,
			100,
		),
	}
}

// Evaluate 评估整个排班
func (c *AvailabilityConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0

	for _, a := range ctx.Assignments {
		p := ctx.GetPerson(a.Person)
		if p == nil || p.IsAvailable(a.Date) {
			continue
		}
		penalty := c.Weight()
		totalPenalty += penalty
		violations = append(violations, c.CreateViolation(
			a.Person, a.Station, a.Date,
			fmt.Sprintf("人员 %s 在 %s 不在岗，不能排班", a.Person, a.Date),
			penalty,
		))
	}

	return len(violations) == 0, totalPenalty, violations
}

// EvaluateAssignment 评估单个候选分配
func (c *AvailabilityConstraint) EvaluateAssignment(ctx *constraint.Context, a *model.Assignment) (bool, int) {
	p := ctx.GetPerson(a.Person)
	if p == nil {
		return false, c.Weight()
	}
	if !p.IsAvailable(a.Date) {
		return false, c.Weight()
	}
	return true, 0
}
