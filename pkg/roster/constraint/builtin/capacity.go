// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/paiban/zhiban/pkg/model"
	"github.com/paiban/zhiban/pkg/roster/constraint"
)

// CapacityConstraint 岗位人数上限约束
// 下限未达视为缺口由求解器与验证器记录，不在此处判为违规
type CapacityConstraint struct {
	*BaseConstraint
}

// NewCapacityConstraint 创建岗位人数上限约束
func NewCapacityConstraint() *CapacityConstraint {
	return &CapacityConstraint{
		BaseConstraint: NewBaseConstraint(
			"岗位人数上限",
			constraint.TypeStationCapacity,
			constraint.CategoryHard,
			90,
		),
	}
}

// Evaluate 评估整个排班
func (c *CapacityConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0

	for _, date := range ctx.Days {
		for _, st := range ctx.Plan.Stations {
			count := ctx.StationCount(date, st.Name)
			if count <= st.MaxStaff {
				continue
			}
			penalty := c.Weight()
			totalPenalty += penalty
			violations = append(violations, c.CreateViolation(
				"", st.Name, date,
				fmt.Sprintf("岗位 %s 在 %s 分配 %d 人，超过上限 %d", st.Name, date, count, st.MaxStaff),
				penalty,
			))
		}
	}

	return len(violations) == 0, totalPenalty, violations
}

// EvaluateAssignment 评估单个候选分配
func (c *CapacityConstraint) EvaluateAssignment(ctx *constraint.Context, a *model.Assignment) (bool, int) {
	st := ctx.GetStation(a.Station)
	if st == nil {
		return false, c.Weight()
	}
	if ctx.StationCount(a.Date, a.Station) >= st.MaxStaff {
		return false, c.Weight()
	}
	return true, 0
}
