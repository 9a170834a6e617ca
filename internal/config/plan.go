// Package config 提供配置管理
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/paiban/zhiban/pkg/errors"
	"github.com/paiban/zhiban/pkg/model"
)

// planFile 计划文件（JSON）的外部格式
type planFile struct {
	Period   periodFile    `json:"period" validate:"required"`
	Holidays []string      `json:"holidays" validate:"dive,datetime=2006-01-02"`
	Stations []stationFile `json:"stations" validate:"required,min=1,dive"`
	People   []personFile  `json:"people" validate:"required,min=1,dive"`
}

type periodFile struct {
	Year   int        `json:"year" validate:"required,gte=1970,lte=2200"`
	Month  int        `json:"month" validate:"required,gte=1,lte=12"`
	Days   []int      `json:"days,omitempty" validate:"dive,gte=1,lte=31"`
	Ranges []dayRange `json:"ranges,omitempty" validate:"dive"`
}

type dayRange struct {
	From int `json:"from" validate:"required,gte=1,lte=31"`
	To   int `json:"to" validate:"required,gte=1,lte=31,gtefield=From"`
}

type stationFile struct {
	Name     string `json:"name" validate:"required"`
	MinStaff int    `json:"min_staff" validate:"gte=0"`
	MaxStaff int    `json:"max_staff" validate:"gte=0"`
}

type personFile struct {
	Name             string          `json:"name" validate:"required"`
	Eligibility      eligibilityFile `json:"eligibility" validate:"required"`
	MandatoryStation string          `json:"mandatory_station,omitempty"`
	Vacations        []string        `json:"vacations,omitempty" validate:"dive,datetime=2006-01-02"`
}

type eligibilityFile struct {
	Type     string   `json:"type" validate:"required,oneof=all none allow deny"`
	Stations []string `json:"stations,omitempty"`
}

// LoadPlan 从 JSON 文件加载排班计划
// 结构校验、引用完整性与人数范围问题均作为 ConfigError 快速失败；
// 人员的不可用日期（休假 ∪ 节假日）在这里解析完成
func LoadPlan(path string) (*model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeConfig, "无法读取计划文件 "+path)
	}
	return ParsePlan(data)
}

// ParsePlan 解析 JSON 计划内容
func ParsePlan(data []byte) (*model.Plan, error) {
	var pf planFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfig, "计划文件不是合法的 JSON")
	}

	if err := validator.New().Struct(&pf); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			ve := verrs[0]
			return nil, errors.Config(ve.Namespace(), "字段校验失败 (%s)", ve.Tag())
		}
		return nil, errors.Wrap(err, errors.CodeConfig, "计划文件校验失败")
	}

	plan, err := buildPlan(&pf)
	if err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// buildPlan 由外部格式构建内存模型
func buildPlan(pf *planFile) (*model.Plan, error) {
	days := append([]int(nil), pf.Period.Days...)
	for _, r := range pf.Period.Ranges {
		for d := r.From; d <= r.To; d++ {
			days = append(days, d)
		}
	}

	plan := &model.Plan{
		Period: model.Period{
			Year:  pf.Period.Year,
			Month: pf.Period.Month,
			Days:  days,
		},
		Holidays: model.NewDateSet(pf.Holidays...),
		Stations: make([]*model.Station, 0, len(pf.Stations)),
		People:   make([]*model.Person, 0, len(pf.People)),
	}

	for _, sf := range pf.Stations {
		plan.Stations = append(plan.Stations, &model.Station{
			Name:     sf.Name,
			MinStaff: sf.MinStaff,
			MaxStaff: sf.MaxStaff,
		})
	}

	for _, p := range pf.People {
		elig, err := buildEligibility(p.Name, p.Eligibility)
		if err != nil {
			return nil, err
		}

		// 不可用日期 = 个人休假 ∪ 节假日，加载时解析完成
		unavailable := model.NewDateSet(p.Vacations...).Union(plan.Holidays)

		plan.People = append(plan.People, &model.Person{
			Name:             p.Name,
			Eligibility:      elig,
			MandatoryStation: p.MandatoryStation,
			UnavailableDates: unavailable,
		})
	}

	return plan, nil
}

// buildEligibility 解析资格规则
func buildEligibility(person string, ef eligibilityFile) (model.Eligibility, error) {
	field := fmt.Sprintf("people.%s.eligibility", person)
	switch ef.Type {
	case "all":
		if len(ef.Stations) > 0 {
			return model.Eligibility{}, errors.Config(field, "类型 all 不应携带岗位列表")
		}
		return model.AllowAll(), nil
	case "none":
		if len(ef.Stations) > 0 {
			return model.Eligibility{}, errors.Config(field, "类型 none 不应携带岗位列表")
		}
		return model.DenyAll(), nil
	case "allow":
		return model.AllowOnly(ef.Stations...), nil
	case "deny":
		return model.DenyOnly(ef.Stations...), nil
	}
	return model.Eligibility{}, errors.Config(field, "未知资格类型: %s", ef.Type)
}
