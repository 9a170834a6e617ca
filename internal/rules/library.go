// Package rules 内置规则目录
package rules

// RuleParam 规则参数定义
type RuleParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // int, bool
	Description string `json:"description"`
	Default     string `json:"default,omitempty"`
}

// RuleDefinition 规则定义
type RuleDefinition struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	Type        string      `json:"type"` // hard 硬约束, soft 软约束
	Description string      `json:"description"`
	Params      []RuleParam `json:"params,omitempty"`
}

// Library 规则目录
type Library struct {
	Rules []RuleDefinition `json:"rules"`
}

// GetLibrary 获取完整的规则目录
func GetLibrary() []RuleDefinition {
	return []RuleDefinition{
		// =====================================================
		// 硬约束
		// =====================================================
		{
			Name:        "availability",
			DisplayName: "人员可用性",
			Type:        "hard",
			Description: "人员在休假或节假日不排班。不可用人员不进入任何当日候选池。",
		},
		{
			Name:        "eligibility",
			DisplayName: "岗位资格",
			Type:        "hard",
			Description: "人员只能分配到资格规则允许的岗位。规则形态：全岗位可上、全岗位禁止、白名单、黑名单，四者互斥。",
		},
		{
			Name:        "single_station_per_day",
			DisplayName: "一人一天一岗",
			Type:        "hard",
			Description: "同一人同一天最多出现在一条分配记录中。",
		},
		{
			Name:        "station_capacity",
			DisplayName: "岗位人数上限",
			Type:        "hard",
			Description: "每日每岗位的分配人数不得超过 max_staff；未达 min_staff 记为人力缺口而非违规。",
		},
		{
			Name:        "mandatory_station",
			DisplayName: "指定岗位优先",
			Type:        "hard",
			Description: "有指定岗位的人员在岗且该岗位未满员时，必须先被排到该岗位。",
			Params: []RuleParam{
				{Name: "strict", Type: "bool", Description: "岗位满员后是否禁止该人员上其他岗位", Default: "false"},
			},
		},
		// =====================================================
		// 软约束
		// =====================================================
		{
			Name:        "workload_balance",
			DisplayName: "值班天数均衡",
			Type:        "soft",
			Description: "可分配人员之间的累计值班天数尽量均衡，极差超过阈值产生惩罚。",
			Params: []RuleParam{
				{Name: "max_spread", Type: "int", Description: "天数极差阈值", Default: "2"},
			},
		},
		{
			Name:        "weekly_rotation",
			DisplayName: "周内岗位轮换",
			Type:        "soft",
			Description: "减少同一人一周内重复上同一岗位的次数，促进岗位轮换。",
			Params: []RuleParam{
				{Name: "max_repeats_per_week", Type: "int", Description: "周内同岗位重复阈值", Default: "2"},
			},
		},
	}
}
