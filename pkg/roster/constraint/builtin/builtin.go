// Package builtin 提供内置约束实现
package builtin

import (
	"github.com/paiban/zhiban/pkg/roster/constraint"
)

// RegisterDefaultConstraints 注册默认约束集
// config 中的键透传给对应约束：
//   - strict: 指定岗位满员后是否禁止人员上其他岗位（默认 false）
//   - max_spread: 值班天数均衡的极差阈值（默认 2）
//   - max_repeats_per_week: 周内同岗位重复阈值（默认 2）
func RegisterDefaultConstraints(m *constraint.Manager, config map[string]interface{}) {
	availability := NewAvailabilityConstraint()
	eligibility := NewEligibilityConstraint()
	single := NewSingleStationConstraint()
	capacity := NewCapacityConstraint()
	mandatory := NewMandatoryStationConstraint()
	balance := NewWorkloadBalanceConstraint()
	rotation := NewWeeklyRotationConstraint()

	if config != nil {
		mandatory.SetConfig(config)
		balance.SetConfig(config)
		rotation.SetConfig(config)
	}

	m.Register(availability)
	m.Register(eligibility)
	m.Register(single)
	m.Register(capacity)
	m.Register(mandatory)
	m.Register(balance)
	m.Register(rotation)
}
