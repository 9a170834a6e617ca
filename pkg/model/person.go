// Package model 定义值班排班引擎的核心数据模型
package model

import "github.com/paiban/zhiban/pkg/errors"

// EligibilityKind 资格规则类别
type EligibilityKind string

const (
	EligibilityAllowAll  EligibilityKind = "allow_all"  // 可上任意岗位
	EligibilityDenyAll   EligibilityKind = "deny_all"   // 不上任何岗位
	EligibilityAllowList EligibilityKind = "allow_list" // 仅可上列出的岗位
	EligibilityDenyList  EligibilityKind = "deny_list"  // 除列出岗位外均可上
)

// Eligibility 资格规则（标签变体）
// 四种形态互斥：一个人有且仅有一种规则形态
type Eligibility struct {
	Kind     EligibilityKind `json:"kind"`
	Stations []string        `json:"stations,omitempty"`
}

// AllowAll 创建全岗位可上规则
func AllowAll() Eligibility {
	return Eligibility{Kind: EligibilityAllowAll}
}

// DenyAll 创建全岗位禁止规则
func DenyAll() Eligibility {
	return Eligibility{Kind: EligibilityDenyAll}
}

// AllowOnly 创建白名单规则
func AllowOnly(stations ...string) Eligibility {
	return Eligibility{Kind: EligibilityAllowList, Stations: stations}
}

// DenyOnly 创建黑名单规则
func DenyOnly(stations ...string) Eligibility {
	return Eligibility{Kind: EligibilityDenyList, Stations: stations}
}

// Allows 判断规则是否允许某岗位
func (e Eligibility) Allows(station string) bool {
	switch e.Kind {
	case EligibilityAllowAll:
		return true
	case EligibilityDenyAll:
		return false
	case EligibilityAllowList:
		for _, s := range e.Stations {
			if s == station {
				return true
			}
		}
		return false
	case EligibilityDenyList:
		for _, s := range e.Stations {
			if s == station {
				return false
			}
		}
		return true
	}
	return false
}

// Validate 校验规则形态
func (e Eligibility) Validate() error {
	switch e.Kind {
	case EligibilityAllowAll, EligibilityDenyAll:
		if len(e.Stations) > 0 {
			return errors.Config("eligibility", "规则 %s 不应携带岗位列表", e.Kind)
		}
		return nil
	case EligibilityAllowList, EligibilityDenyList:
		if len(e.Stations) == 0 {
			return errors.Config("eligibility", "规则 %s 需要非空岗位列表", e.Kind)
		}
		return nil
	}
	return errors.Config("eligibility", "未知规则类别: %s", e.Kind)
}

// Person 值班人员
type Person struct {
	Name        string      `json:"name"`
	Eligibility Eligibility `json:"eligibility"`

	// MandatoryStation 指定岗位
	// 人员在岗时必须优先分配到该岗位；岗位满员后的处理由求解器策略决定
	MandatoryStation string `json:"mandatory_station,omitempty"`

	// UnavailableDates 不可用日期（休假与节假日的并集，加载时计算）
	UnavailableDates DateSet `json:"unavailable_dates,omitempty"`
}

// CanWork 判断人员是否可上某岗位
func (p *Person) CanWork(station string) bool {
	return p.Eligibility.Allows(station)
}

// MustWork 判断某岗位是否为人员的指定岗位
func (p *Person) MustWork(station string) bool {
	return p.MandatoryStation != "" && p.MandatoryStation == station
}

// HasMandatory 判断人员是否有指定岗位
func (p *Person) HasMandatory() bool {
	return p.MandatoryStation != ""
}

// IsAvailable 判断人员某日是否在岗
func (p *Person) IsAvailable(date string) bool {
	return !p.UnavailableDates.Contains(date)
}

// IsAssignable 判断人员是否可能被分配（非全岗位禁止）
func (p *Person) IsAssignable() bool {
	return p.Eligibility.Kind != EligibilityDenyAll
}
