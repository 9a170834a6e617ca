package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paiban/zhiban/pkg/errors"
	"github.com/paiban/zhiban/pkg/model"
)

const validPlanJSON = `{
	"period": {"year": 2026, "month": 3, "ranges": [{"from": 2, "to": 6}]},
	"holidays": ["2026-03-04"],
	"stations": [
		{"name": "前台", "min_staff": 1, "max_staff": 2},
		{"name": "机房", "min_staff": 1, "max_staff": 1}
	],
	"people": [
		{"name": "张三", "eligibility": {"type": "all"}},
		{"name": "李四", "eligibility": {"type": "allow", "stations": ["前台"]}},
		{"name": "王五", "eligibility": {"type": "all"}, "mandatory_station": "机房", "vacations": ["2026-03-05"]}
	]
}`

func TestParsePlan_Valid(t *testing.T) {
	plan, err := ParsePlan([]byte(validPlanJSON))
	if err != nil {
		t.Fatalf("ParsePlan() error = %v", err)
	}

	if plan.Period.Year != 2026 || plan.Period.Month != 3 {
		t.Errorf("周期 = %d-%d", plan.Period.Year, plan.Period.Month)
	}
	if len(plan.Period.Days) != 5 {
		t.Errorf("range 展开后应有 5 天, got %d", len(plan.Period.Days))
	}
	if len(plan.Stations) != 2 || len(plan.People) != 3 {
		t.Errorf("stations/people = %d/%d", len(plan.Stations), len(plan.People))
	}

	// 李四的白名单
	lisi := plan.Person("李四")
	if lisi == nil || lisi.Eligibility.Kind != model.EligibilityAllowList {
		t.Error("李四应为白名单资格")
	}

	// 王五的不可用日 = 个人休假 ∪ 节假日
	wangwu := plan.Person("王五")
	if wangwu == nil {
		t.Fatal("未找到王五")
	}
	if !wangwu.UnavailableDates.Contains("2026-03-05") {
		t.Error("王五的休假日应不可用")
	}
	if !wangwu.UnavailableDates.Contains("2026-03-04") {
		t.Error("节假日应并入不可用日期")
	}
	if wangwu.MandatoryStation != "机房" {
		t.Errorf("王五指定岗位 = %s", wangwu.MandatoryStation)
	}
}

func TestParsePlan_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"非法JSON", `{`},
		{"缺少岗位", `{"period": {"year": 2026, "month": 3}, "stations": [], "people": [{"name": "张三", "eligibility": {"type": "all"}}]}`},
		{"缺少人员", `{"period": {"year": 2026, "month": 3}, "stations": [{"name": "前台", "min_staff": 1, "max_staff": 1}], "people": []}`},
		{"月份越界", `{"period": {"year": 2026, "month": 13}, "stations": [{"name": "前台", "min_staff": 0, "max_staff": 1}], "people": [{"name": "张三", "eligibility": {"type": "all"}}]}`},
		{"节假日格式错误", `{"period": {"year": 2026, "month": 3}, "holidays": ["03/04/2026"], "stations": [{"name": "前台", "min_staff": 0, "max_staff": 1}], "people": [{"name": "张三", "eligibility": {"type": "all"}}]}`},
		{"未知资格类型", `{"period": {"year": 2026, "month": 3}, "stations": [{"name": "前台", "min_staff": 0, "max_staff": 1}], "people": [{"name": "张三", "eligibility": {"type": "sometimes"}}]}`},
		{"all类型携带岗位", `{"period": {"year": 2026, "month": 3}, "stations": [{"name": "前台", "min_staff": 0, "max_staff": 1}], "people": [{"name": "张三", "eligibility": {"type": "all", "stations": ["前台"]}}]}`},
		{"min大于max", `{"period": {"year": 2026, "month": 3}, "stations": [{"name": "前台", "min_staff": 2, "max_staff": 1}], "people": [{"name": "张三", "eligibility": {"type": "all"}}]}`},
		{"白名单引用未知岗位", `{"period": {"year": 2026, "month": 3}, "stations": [{"name": "前台", "min_staff": 0, "max_staff": 1}], "people": [{"name": "张三", "eligibility": {"type": "allow", "stations": ["仓库"]}}]}`},
		{"指定岗位与资格冲突", `{"period": {"year": 2026, "month": 3}, "stations": [{"name": "前台", "min_staff": 0, "max_staff": 1}, {"name": "机房", "min_staff": 0, "max_staff": 1}], "people": [{"name": "张三", "eligibility": {"type": "allow", "stations": ["前台"]}, "mandatory_station": "机房"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlan([]byte(tt.data))
			if err == nil {
				t.Fatal("ParsePlan() 应返回错误")
			}
			if !errors.IsConfig(err) {
				t.Errorf("应为配置错误, got %v", err)
			}
		})
	}
}

func TestLoadPlan_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	if err := os.WriteFile(path, []byte(validPlanJSON), 0644); err != nil {
		t.Fatal(err)
	}

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan() error = %v", err)
	}
	if len(plan.People) != 3 {
		t.Errorf("people = %d, expected 3", len(plan.People))
	}
}

func TestLoadPlan_Missing(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("不存在的文件应返回错误")
	}
	if !errors.IsConfig(err) {
		t.Errorf("应为配置错误, got %v", err)
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.LogLevel != "info" || s.LogFormat != "console" {
		t.Errorf("日志默认值错误: %s/%s", s.LogLevel, s.LogFormat)
	}
	if s.Seed != 0 || s.StrictMandatory {
		t.Error("求解默认值错误")
	}
	if s.MaxSpread != 2 || s.MaxRepeatsPerWeek != 2 {
		t.Error("阈值默认值错误")
	}
}

func TestLoadSettings_Env(t *testing.T) {
	t.Setenv("ZHIBAN_SEED", "42")
	t.Setenv("ZHIBAN_STRICT_MANDATORY", "true")
	t.Setenv("ZHIBAN_MAX_SPREAD", "5")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Seed != 42 || !s.StrictMandatory || s.MaxSpread != 5 {
		t.Errorf("环境变量未生效: %+v", s)
	}

	cfg := s.ConstraintConfig()
	if cfg["strict"] != true {
		t.Error("ConstraintConfig 未透传 strict")
	}
	if cfg["max_spread"] != 5 {
		t.Error("ConstraintConfig 未透传 max_spread")
	}
}
