// ZhiBan 值班排班引擎
// 命令行入口

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/paiban/zhiban/internal/config"
	"github.com/paiban/zhiban/internal/metrics"
	"github.com/paiban/zhiban/internal/render"
	"github.com/paiban/zhiban/internal/rules"
	"github.com/paiban/zhiban/pkg/calendar"
	"github.com/paiban/zhiban/pkg/errors"
	"github.com/paiban/zhiban/pkg/logger"
	"github.com/paiban/zhiban/pkg/roster/constraint"
	"github.com/paiban/zhiban/pkg/roster/constraint/builtin"
	"github.com/paiban/zhiban/pkg/roster/solver"
	"github.com/paiban/zhiban/pkg/stats"
	"github.com/paiban/zhiban/pkg/validator"
)

// 构建信息（通过 ldflags 注入）
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.IsConfig(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zhiban",
		Short:         "值班排班引擎",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(),
		newRulesCmd(),
		newVersionCmd(),
	)

	return root
}

// generateOptions generate 命令选项
type generateOptions struct {
	planPath    string
	seed        int64
	strict      bool
	jsonOut     bool
	showMetrics bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "根据排班计划生成值班表",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.planPath, "config", "c", "plan.json", "排班计划文件路径")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "随机种子（0 为确定性排序）")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "指定岗位满员后禁止人员上其他岗位")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "以 JSON 输出完整结果")
	cmd.Flags().BoolVar(&opts.showMetrics, "metrics", false, "输出 Prometheus 格式的运行指标")

	return cmd
}

// generateOutput JSON 输出结构
type generateOutput struct {
	Result   *solver.Result         `json:"result"`
	Report   *validator.Report      `json:"report"`
	Fairness *stats.FairnessMetrics `json:"fairness"`
	Coverage *stats.CoverageMetrics `json:"coverage"`
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return errors.Wrap(err, errors.CodeConfig, "加载运行时设置失败")
	}

	// 命令行标志覆盖环境变量
	if cmd.Flags().Changed("seed") {
		settings.Seed = opts.seed
	}
	if cmd.Flags().Changed("strict") {
		settings.StrictMandatory = opts.strict
	}

	logger.Init(logger.Config{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Output: "stderr",
	})

	plan, err := config.LoadPlan(opts.planPath)
	if err != nil {
		return err
	}

	days, err := calendar.WorkingDays(plan.Period, plan.Holidays)
	if err != nil {
		return err
	}

	rc := constraint.NewContext(plan, days)
	rc.Config = settings.ConstraintConfig()

	manager := constraint.NewManager()
	builtin.RegisterDefaultConstraints(manager, rc.Config)

	greedy := solver.NewGreedySolver(manager)
	if settings.Seed != 0 {
		greedy.SetSeed(settings.Seed)
	}

	result, err := greedy.Solve(cmd.Context(), rc)
	if err != nil {
		return err
	}
	metrics.RecordSolve(result.Success, result.Duration)
	metrics.SetSolveResult(len(result.Schedule.Assignments), len(result.Shortfalls))

	report := validator.Validate(result.Schedule, plan, days)

	fairness := stats.NewFairnessAnalyzer().Analyze(report.PerPersonDays)
	coverage := stats.NewCoverageAnalyzer().Analyze(result.Schedule, plan, days)
	metrics.SetFairnessGini(fairness.Gini)
	metrics.SetDemandSatisfaction(coverage.DemandSatisfaction)

	out := cmd.OutOrStdout()

	if opts.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(&generateOutput{
			Result:   result,
			Report:   report,
			Fairness: fairness,
			Coverage: coverage,
		}); err != nil {
			return err
		}
	} else {
		if err := render.Schedule(out, result.Schedule, plan); err != nil {
			return err
		}
		fmt.Fprintln(out)
		render.SolveResult(out, result)
		fmt.Fprintln(out)
		render.Report(out, report)
		fmt.Fprintln(out)
		render.Analytics(out, fairness, coverage)
	}

	if opts.showMetrics {
		fmt.Fprintln(out)
		metrics.WriteText(out)
	}

	return nil
}

func newRulesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "列出内置排班规则",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			library := rules.GetLibrary()

			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(library)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "名称\t类型\t说明")
			for _, def := range library {
				kind := "硬约束"
				if def.Type == "soft" {
					kind = "软约束"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", def.Name, kind, def.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "以 JSON 输出")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "打印版本信息",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ZhiBan 值班排班引擎 v%s\n", Version)
			fmt.Fprintf(out, "Build: %s (%s)\n", BuildTime, GitCommit)
		},
	}
}
