// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/paiban/zhiban/pkg/roster/constraint"
)

// WorkloadBalanceConstraint 值班天数均衡约束（软约束）
// 可分配人员之间的总值班天数极差超过阈值时产生惩罚
type WorkloadBalanceConstraint struct {
	*BaseConstraint
}

// NewWorkloadBalanceConstraint 创建值班天数均衡约束
func NewWorkloadBalanceConstraint() *WorkloadBalanceConstraint {
	return &WorkloadBalanceConstraint{
		BaseConstraint: NewBaseConstraint(
			"值班天数均衡",
			constraint.TypeWorkloadBalance,
			constraint.CategorySoft,
			40,
		),
	}
}

// Evaluate 评估整个排班
func (c *WorkloadBalanceConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	maxSpread := c.GetConfigInt("max_spread", 2)

	minDays, maxDays := -1, 0
	minName, maxName := "", ""
	for _, p := range ctx.Plan.People {
		if !p.IsAssignable() {
			// 全岗位禁止的人员天数恒为 0，不参与均衡评估
			continue
		}
		days := ctx.PersonDays(p.Name)
		if minDays < 0 || days < minDays {
			minDays, minName = days, p.Name
		}
		if days > maxDays {
			maxDays, maxName = days, p.Name
		}
	}

	if minDays < 0 {
		return true, 0, nil
	}

	spread := maxDays - minDays
	if spread <= maxSpread {
		return true, 0, nil
	}

	penalty := c.Weight() * (spread - maxSpread)
	detail := c.CreateViolation(
		maxName, "", "",
		fmt.Sprintf("值班天数极差 %d 超过阈值 %d（最多 %s %d 天，最少 %s %d 天）",
			spread, maxSpread, maxName, maxDays, minName, minDays),
		penalty,
	)
	return false, penalty, []constraint.ViolationDetail{detail}
}
