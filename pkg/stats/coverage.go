// Package stats 提供值班表统计分析功能
package stats

import (
	"github.com/paiban/zhiban/pkg/model"
)

// CoverageMetrics 覆盖率指标
type CoverageMetrics struct {
	TotalRequired      int                    `json:"total_required"`      // 全周期最低人数总额
	TotalFilled        int                    `json:"total_filled"`        // 已满足的最低人数总额
	DemandSatisfaction float64                `json:"demand_satisfaction"` // 需求满足度 (%)
	DailyCoverage      map[string]DayCoverage `json:"daily_coverage"`      // 每日覆盖情况
	Understaffed       []UnderstaffedStation  `json:"understaffed"`        // 人手不足的岗位日
}

// DayCoverage 每日覆盖情况
type DayCoverage struct {
	Date         string  `json:"date"`
	Required     int     `json:"required"`
	Assigned     int     `json:"assigned"`
	CoverageRate float64 `json:"coverage_rate"`
}

// UnderstaffedStation 人手不足的岗位日
type UnderstaffedStation struct {
	Date     string `json:"date"`
	Station  string `json:"station"`
	Required int    `json:"required"`
	Assigned int    `json:"assigned"`
	Shortage int    `json:"shortage"`
}

// CoverageAnalyzer 覆盖率分析器
type CoverageAnalyzer struct{}

// NewCoverageAnalyzer 创建覆盖率分析器
func NewCoverageAnalyzer() *CoverageAnalyzer {
	return &CoverageAnalyzer{}
}

// Analyze 分析需求覆盖率
func (c *CoverageAnalyzer) Analyze(schedule *model.Schedule, plan *model.Plan, days []string) *CoverageMetrics {
	metrics := &CoverageMetrics{
		DailyCoverage: make(map[string]DayCoverage),
		Understaffed:  make([]UnderstaffedStation, 0),
	}

	counts := make(map[string]int)
	for _, a := range schedule.Assignments {
		counts[a.Date+"|"+a.Station]++
	}

	for _, date := range days {
		dayRequired, dayFilled := 0, 0
		for _, st := range plan.Stations {
			assigned := counts[date+"|"+st.Name]
			filled := assigned
			if filled > st.MinStaff {
				filled = st.MinStaff
			}
			dayRequired += st.MinStaff
			dayFilled += filled

			if assigned < st.MinStaff {
				metrics.Understaffed = append(metrics.Understaffed, UnderstaffedStation{
					Date:     date,
					Station:  st.Name,
					Required: st.MinStaff,
					Assigned: assigned,
					Shortage: st.MinStaff - assigned,
				})
			}
		}

		coverage := DayCoverage{Date: date, Required: dayRequired, Assigned: dayFilled}
		if dayRequired > 0 {
			coverage.CoverageRate = float64(dayFilled) / float64(dayRequired) * 100
		} else {
			coverage.CoverageRate = 100
		}
		metrics.DailyCoverage[date] = coverage

		metrics.TotalRequired += dayRequired
		metrics.TotalFilled += dayFilled
	}

	if metrics.TotalRequired > 0 {
		metrics.DemandSatisfaction = float64(metrics.TotalFilled) / float64(metrics.TotalRequired) * 100
	} else {
		metrics.DemandSatisfaction = 100
	}
	return metrics
}
