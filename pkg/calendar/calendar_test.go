package calendar

import (
	"testing"

	"github.com/paiban/zhiban/pkg/model"
)

func TestWorkingDays_WholeMonth(t *testing.T) {
	days, err := WorkingDays(model.Period{Year: 2026, Month: 2}, nil)
	if err != nil {
		t.Fatalf("WorkingDays() error = %v", err)
	}
	if len(days) != 28 {
		t.Errorf("2026年2月应有 28 天, got %d", len(days))
	}
	if days[0] != "2026-02-01" || days[27] != "2026-02-28" {
		t.Errorf("首尾日期错误: %s, %s", days[0], days[27])
	}
}

func TestWorkingDays_ExplicitDays(t *testing.T) {
	period := model.Period{Year: 2026, Month: 3, Days: []int{15, 1, 15, 3}}
	days, err := WorkingDays(period, nil)
	if err != nil {
		t.Fatalf("WorkingDays() error = %v", err)
	}
	expected := []string{"2026-03-01", "2026-03-03", "2026-03-15"}
	if len(days) != len(expected) {
		t.Fatalf("去重后应有 %d 天, got %d", len(expected), len(days))
	}
	for i, d := range expected {
		if days[i] != d {
			t.Errorf("days[%d] = %s, expected %s", i, days[i], d)
		}
	}
}

func TestWorkingDays_Holidays(t *testing.T) {
	holidays := model.NewDateSet("2026-03-02", "2026-03-03")
	period := model.Period{Year: 2026, Month: 3, Days: []int{1, 2, 3, 4}}
	days, err := WorkingDays(period, holidays)
	if err != nil {
		t.Fatalf("WorkingDays() error = %v", err)
	}
	expected := []string{"2026-03-01", "2026-03-04"}
	if len(days) != len(expected) {
		t.Fatalf("剔除节假日后应有 %d 天, got %d", len(expected), len(days))
	}
	for i, d := range expected {
		if days[i] != d {
			t.Errorf("days[%d] = %s, expected %s", i, days[i], d)
		}
	}
}

func TestWorkingDays_AllHolidays(t *testing.T) {
	// 全部为节假日时返回空序列，不报错
	holidays := model.NewDateSet("2026-03-01", "2026-03-02")
	period := model.Period{Year: 2026, Month: 3, Days: []int{1, 2}}
	days, err := WorkingDays(period, holidays)
	if err != nil {
		t.Fatalf("WorkingDays() error = %v", err)
	}
	if len(days) != 0 {
		t.Errorf("应返回空序列, got %v", days)
	}
}

func TestWorkingDays_InvalidDay(t *testing.T) {
	period := model.Period{Year: 2026, Month: 2, Days: []int{30}}
	if _, err := WorkingDays(period, nil); err == nil {
		t.Error("2月30日应返回配置错误")
	}
}
