// Package render 值班表与校验报告的文本输出
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/paiban/zhiban/pkg/model"
	"github.com/paiban/zhiban/pkg/roster/solver"
	"github.com/paiban/zhiban/pkg/stats"
	"github.com/paiban/zhiban/pkg/validator"
)

// Schedule 以表格形式输出值班表：行=日期，列=岗位
func Schedule(w io.Writer, schedule *model.Schedule, plan *model.Plan) error {
	order := make([]string, 0, len(plan.Stations))
	for _, st := range plan.Stations {
		order = append(order, st.Name)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := append([]string{"日期"}, order...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, day := range schedule.ByDay(order) {
		byStation := make(map[string][]string, len(day.Stations))
		for _, sd := range day.Stations {
			byStation[sd.Station] = sd.People
		}
		row := []string{day.Date}
		for _, st := range order {
			people := byStation[st]
			if len(people) == 0 {
				row = append(row, "-")
			} else {
				row = append(row, strings.Join(people, ","))
			}
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// SolveResult 输出求解概要
func SolveResult(w io.Writer, result *solver.Result) {
	fmt.Fprintf(w, "运行ID:   %s\n", result.RunID)
	fmt.Fprintf(w, "结果:     %s\n", result.Message)
	fmt.Fprintf(w, "耗时:     %s\n", result.Duration)

	st := result.Statistics
	if st != nil {
		fmt.Fprintf(w, "天数:     %d (完整 %d, 满足率 %.1f%%)\n", st.TotalDays, st.FilledDays, st.FillRate)
		fmt.Fprintf(w, "分配数:   %d\n", st.TotalAssignments)
		fmt.Fprintf(w, "人均天数: %.1f (最多 %d, 最少 %d, 极差 %d)\n",
			st.AvgDaysPerPerson, st.MaxPersonDays, st.MinPersonDays, st.DaySpread)
	}

	if len(result.Shortfalls) > 0 {
		fmt.Fprintf(w, "\n人力缺口 (%d):\n", len(result.Shortfalls))
		for _, sf := range result.Shortfalls {
			fmt.Fprintf(w, "  %s %s: 需要 %d 实际 %d (%s)\n", sf.Date, sf.Station, sf.Needed, sf.Assigned, sf.Reason)
		}
	}
}

// Report 输出校验报告
func Report(w io.Writer, report *validator.Report) {
	if report.AllSatisfied {
		fmt.Fprintln(w, "校验: 全部硬约束满足")
	} else {
		fmt.Fprintf(w, "校验: 存在 %d 个违规\n", len(report.Violations))
		for _, v := range report.Violations {
			fmt.Fprintf(w, "  [%s] %s: %s\n", v.Rule, v.Date, v.Detail)
		}
	}

	if len(report.Shortfalls) > 0 {
		fmt.Fprintf(w, "缺口: %d 个岗位日未达最低人数\n", len(report.Shortfalls))
		for _, sf := range report.Shortfalls {
			fmt.Fprintf(w, "  %s %s: 需要 %d 可用 %d (%s)\n", sf.Date, sf.Station, sf.Needed, sf.Available, sf.Cause)
		}
	}

	names := make([]string, 0, len(report.PerPersonDays))
	for name := range report.PerPersonDays {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "每人值班天数:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %d\n", name, report.PerPersonDays[name])
	}
}

// Analytics 输出公平性与覆盖率分析
func Analytics(w io.Writer, fairness *stats.FairnessMetrics, coverage *stats.CoverageMetrics) {
	fmt.Fprintln(w, "公平性:")
	fmt.Fprintf(w, "  基尼系数:   %.3f\n", fairness.Gini)
	fmt.Fprintf(w, "  标准差:     %.2f\n", fairness.StdDev)
	fmt.Fprintf(w, "  综合评分:   %.1f/100\n", fairness.OverallScore)

	fmt.Fprintln(w, "覆盖率:")
	fmt.Fprintf(w, "  需求满足度: %.1f%% (%d/%d)\n",
		coverage.DemandSatisfaction, coverage.TotalFilled, coverage.TotalRequired)
	if len(coverage.Understaffed) > 0 {
		fmt.Fprintf(w, "  人手不足:   %d 个岗位日\n", len(coverage.Understaffed))
	}
}
