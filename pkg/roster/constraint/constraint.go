// Package constraint 定义约束接口和管理器
package constraint

import (
	"github.com/paiban/zhiban/pkg/model"
)

// Type 约束类型标识
type Type string

const (
	// 硬约束类型
	TypeAvailability     Type = "availability"            // 不可用日不排班
	TypeEligibility      Type = "eligibility"             // 资格匹配
	TypeSingleStation    Type = "single_station_per_day"  // 一人一天一岗
	TypeStationCapacity  Type = "station_capacity"        // 岗位人数上限
	TypeMandatoryStation Type = "mandatory_station"       // 指定岗位优先

	// 软约束类型
	TypeWorkloadBalance Type = "workload_balance" // 值班天数均衡
	TypeWeeklyRotation  Type = "weekly_rotation"  // 周内岗位轮换
)

// Category 约束类别
type Category string

const (
	CategoryHard Category = "hard" // 硬约束（必须满足）
	CategorySoft Category = "soft" // 软约束（尽量满足）
)

// Constraint 约束接口
type Constraint interface {
	// Name 返回约束名称
	Name() string

	// Type 返回约束类型
	Type() Type

	// Category 返回约束类别
	Category() Category

	// Weight 返回约束权重 (1-100)
	Weight() int

	// Evaluate 评估整个排班方案
	// 返回：是否满足、惩罚值、违反详情
	Evaluate(ctx *Context) (valid bool, penalty int, details []ViolationDetail)

	// EvaluateAssignment 评估单个候选分配（加入前）
	// 返回：是否满足、惩罚值
	EvaluateAssignment(ctx *Context, assignment *model.Assignment) (valid bool, penalty int)
}

// ViolationDetail 约束违反详情
type ViolationDetail struct {
	ConstraintType Type   `json:"constraint_type"`
	ConstraintName string `json:"constraint_name"`
	Person         string `json:"person,omitempty"`
	Station        string `json:"station,omitempty"`
	Date           string `json:"date,omitempty"`
	Message        string `json:"message"`
	Severity       string `json:"severity"` // error/warning
	Penalty        int    `json:"penalty"`
}

// Result 约束评估结果
type Result struct {
	IsValid        bool              `json:"is_valid"`
	TotalPenalty   int               `json:"total_penalty"`
	HardViolations []ViolationDetail `json:"hard_violations"`
	SoftViolations []ViolationDetail `json:"soft_violations"`
}
