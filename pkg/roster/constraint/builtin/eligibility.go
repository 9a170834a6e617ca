// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/paiban/zhiban/pkg/model"
	"github.com/paiban/zhiban/pkg/roster/constraint"
)

// EligibilityConstraint 资格约束
// 人员只能分配到其资格规则允许的岗位
type EligibilityConstraint struct {
	*BaseConstraint
}

// NewEligibilityConstraint 创建资格约束
func NewEligibilityConstraint() *EligibilityConstraint {
	return &EligibilityConstraint{
		BaseConstraint: NewBaseConstraint(
			"岗位资格",
			constraint.TypeEligibility,
			constraint.CategoryHard,
			100,
		),
	}
}

// Evaluate 评估整个排班
func (c *EligibilityConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0

	for _, a := range ctx.Assignments {
		p := ctx.GetPerson(a.Person)
		if p == nil {
			continue
		}
		if p.CanWork(a.Station) {
			continue
		}
		penalty := c.Weight()
		totalPenalty += penalty
		violations = append(violations, c.CreateViolation(
			a.Person, a.Station, a.Date,
			fmt.Sprintf("人员 %s 无 %s 岗位资格", a.Person, a.Station),
			penalty,
		))
	}

	return len(violations) == 0, totalPenalty, violations
}

// EvaluateAssignment 评估单个候选分配
func (c *EligibilityConstraint) EvaluateAssignment(ctx *constraint.Context, a *model.Assignment) (bool, int) {
	p := ctx.GetPerson(a.Person)
	if p == nil || !p.CanWork(a.Station) {
		return false, c.Weight()
	}
	return true, 0
}
