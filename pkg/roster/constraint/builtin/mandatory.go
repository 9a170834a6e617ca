// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/paiban/zhiban/pkg/model"
	"github.com/paiban/zhiban/pkg/roster/constraint"
)

// MandatoryStationConstraint 指定岗位约束
// 人员在岗且其指定岗位尚未满员时，必须被分配到该岗位
//
// 岗位已满员时的策略由 strict 配置决定：
//   - strict=false（默认）：人员可被释放到其他有资格的岗位
//   - strict=true：人员当日不再分配其他岗位
type MandatoryStationConstraint struct {
	*BaseConstraint
}

// NewMandatoryStationConstraint 创建指定岗位约束
func NewMandatoryStationConstraint() *MandatoryStationConstraint {
	return &MandatoryStationConstraint{
		BaseConstraint: NewBaseConstraint(
			"指定岗位优先",
			constraint.TypeMandatoryStation,
			constraint.CategoryHard,
			95,
		),
	}
}

// Evaluate 评估整个排班
// 逐日检查：指定岗位人员在岗却未被排到该岗位，且该岗位仍有空位，即为违规
func (c *MandatoryStationConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0
	strict := c.GetConfigBool("strict", false)

	for _, p := range ctx.Plan.People {
		if !p.HasMandatory() {
			continue
		}
		st := ctx.GetStation(p.MandatoryStation)
		if st == nil {
			continue
		}

		for _, date := range ctx.Days {
			if !p.IsAvailable(date) {
				continue
			}
			assigned := ctx.PersonAssignedOn(p.Name, date)
			if assigned != nil && assigned.Station == p.MandatoryStation {
				continue
			}

			count := ctx.StationCount(date, p.MandatoryStation)
			if count < st.MaxStaff {
				// 岗位仍有空位却被排到别处或未被排班
				penalty := c.Weight()
				totalPenalty += penalty
				violations = append(violations, c.CreateViolation(
					p.Name, p.MandatoryStation, date,
					fmt.Sprintf("人员 %s 在 %s 未被排到指定岗位 %s（该岗位尚有空位）", p.Name, date, p.MandatoryStation),
					penalty,
				))
				continue
			}

			if strict && assigned != nil {
				penalty := c.Weight()
				totalPenalty += penalty
				violations = append(violations, c.CreateViolation(
					p.Name, assigned.Station, date,
					fmt.Sprintf("人员 %s 的指定岗位 %s 已满员，严格策略下不应被排到 %s", p.Name, p.MandatoryStation, assigned.Station),
					penalty,
				))
			}
		}
	}

	return len(violations) == 0, totalPenalty, violations
}

// EvaluateAssignment 评估单个候选分配
func (c *MandatoryStationConstraint) EvaluateAssignment(ctx *constraint.Context, a *model.Assignment) (bool, int) {
	p := ctx.GetPerson(a.Person)
	if p == nil || !p.HasMandatory() {
		return true, 0
	}
	if a.Station == p.MandatoryStation {
		return true, 0
	}

	st := ctx.GetStation(p.MandatoryStation)
	if st == nil {
		return true, 0
	}

	count := ctx.StationCount(a.Date, p.MandatoryStation)
	if count < st.MaxStaff {
		// 指定岗位仍有空位，不允许排到别处
		return false, c.Weight()
	}
	if c.GetConfigBool("strict", false) {
		// 严格策略：岗位满员后人员当日不再上岗
		return false, c.Weight()
	}
	return true, 0
}
