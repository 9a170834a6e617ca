package builtin

import (
	"testing"

	"github.com/paiban/zhiban/pkg/model"
	"github.com/paiban/zhiban/pkg/roster/constraint"
)

func testContext() *constraint.Context {
	plan := &model.Plan{
		Period: model.Period{Year: 2026, Month: 3},
		Stations: []*model.Station{
			{Name: "前台", MinStaff: 1, MaxStaff: 2},
			{Name: "机房", MinStaff: 1, MaxStaff: 1},
		},
		People: []*model.Person{
			{Name: "张三", Eligibility: model.AllowAll()},
			{Name: "李四", Eligibility: model.AllowOnly("前台")},
			{Name: "王五", Eligibility: model.AllowAll(), MandatoryStation: "机房"},
			{Name: "赵六", Eligibility: model.AllowAll(), UnavailableDates: model.NewDateSet("2026-03-02")},
		},
	}
	return constraint.NewContext(plan, []string{"2026-03-02", "2026-03-03"})
}

func TestAvailabilityConstraint(t *testing.T) {
	c := NewAvailabilityConstraint()
	ctx := testContext()

	t.Run("在岗人员可分配", func(t *testing.T) {
		a := model.NewAssignment("2026-03-02", "张三", "前台")
		if valid, _ := c.EvaluateAssignment(ctx, a); !valid {
			t.Error("在岗人员应可分配")
		}
	})

	t.Run("休假人员不可分配", func(t *testing.T) {
		a := model.NewAssignment("2026-03-02", "赵六", "前台")
		if valid, _ := c.EvaluateAssignment(ctx, a); valid {
			t.Error("休假人员不应可分配")
		}
	})

	t.Run("休假日之外可分配", func(t *testing.T) {
		a := model.NewAssignment("2026-03-03", "赵六", "前台")
		if valid, _ := c.EvaluateAssignment(ctx, a); !valid {
			t.Error("休假日之外应可分配")
		}
	})

	t.Run("全盘评估检出违规", func(t *testing.T) {
		ctx := testContext()
		ctx.AddAssignment(model.NewAssignment("2026-03-02", "赵六", "前台"))
		valid, penalty, details := c.Evaluate(ctx)
		if valid {
			t.Error("应检出违规")
		}
		if penalty == 0 || len(details) != 1 {
			t.Errorf("penalty = %d, details = %d", penalty, len(details))
		}
	})
}

func TestEligibilityConstraint(t *testing.T) {
	c := NewEligibilityConstraint()
	ctx := testContext()

	t.Run("白名单内可分配", func(t *testing.T) {
		a := model.NewAssignment("2026-03-02", "李四", "前台")
		if valid, _ := c.EvaluateAssignment(ctx, a); !valid {
			t.Error("白名单内岗位应可分配")
		}
	})

	t.Run("白名单外不可分配", func(t *testing.T) {
		a := model.NewAssignment("2026-03-02", "李四", "机房")
		if valid, _ := c.EvaluateAssignment(ctx, a); valid {
			t.Error("白名单外岗位不应可分配")
		}
	})

	t.Run("未知人员不可分配", func(t *testing.T) {
		a := model.NewAssignment("2026-03-02", "陌生人", "前台")
		if valid, _ := c.EvaluateAssignment(ctx, a); valid {
			t.Error("未知人员不应可分配")
		}
	})
}

func TestSingleStationConstraint(t *testing.T) {
	c := NewSingleStationConstraint()
	ctx := testContext()
	ctx.AddAssignment(model.NewAssignment("2026-03-02", "张三", "前台"))

	t.Run("当日已有分配则拒绝", func(t *testing.T) {
		a := model.NewAssignment("2026-03-02", "张三", "机房")
		if valid, _ := c.EvaluateAssignment(ctx, a); valid {
			t.Error("同日第二条分配应被拒绝")
		}
	})

	t.Run("另一日可分配", func(t *testing.T) {
		a := model.NewAssignment("2026-03-03", "张三", "机房")
		if valid, _ := c.EvaluateAssignment(ctx, a); !valid {
			t.Error("另一日应可分配")
		}
	})
}

func TestCapacityConstraint(t *testing.T) {
	c := NewCapacityConstraint()

	t.Run("未满员可分配", func(t *testing.T) {
		ctx := testContext()
		ctx.AddAssignment(model.NewAssignment("2026-03-02", "张三", "前台"))
		a := model.NewAssignment("2026-03-02", "李四", "前台")
		if valid, _ := c.EvaluateAssignment(ctx, a); !valid {
			t.Error("未满员岗位应可分配")
		}
	})

	t.Run("满员则拒绝", func(t *testing.T) {
		ctx := testContext()
		ctx.AddAssignment(model.NewAssignment("2026-03-02", "王五", "机房"))
		a := model.NewAssignment("2026-03-02", "张三", "机房")
		if valid, _ := c.EvaluateAssignment(ctx, a); valid {
			t.Error("满员岗位不应再分配")
		}
	})

	t.Run("未达下限不是违规", func(t *testing.T) {
		// 下限缺口由求解器记录，不在容量约束中判违规
		ctx := testContext()
		valid, _, details := c.Evaluate(ctx)
		if !valid || len(details) != 0 {
			t.Errorf("空排班不应有容量违规, details = %d", len(details))
		}
	})
}

func TestMandatoryStationConstraint(t *testing.T) {
	c := NewMandatoryStationConstraint()

	t.Run("排到指定岗位", func(t *testing.T) {
		ctx := testContext()
		a := model.NewAssignment("2026-03-02", "王五", "机房")
		if valid, _ := c.EvaluateAssignment(ctx, a); !valid {
			t.Error("指定岗位本身应可分配")
		}
	})

	t.Run("指定岗位有空位时禁止排别处", func(t *testing.T) {
		ctx := testContext()
		a := model.NewAssignment("2026-03-02", "王五", "前台")
		if valid, _ := c.EvaluateAssignment(ctx, a); valid {
			t.Error("指定岗位有空位时不应排到别处")
		}
	})

	t.Run("指定岗位满员后释放", func(t *testing.T) {
		ctx := testContext()
		// 机房 max=1，已被张三占据
		ctx.AddAssignment(model.NewAssignment("2026-03-02", "张三", "机房"))
		a := model.NewAssignment("2026-03-02", "王五", "前台")
		if valid, _ := c.EvaluateAssignment(ctx, a); !valid {
			t.Error("默认策略下满员后应释放到其他岗位")
		}
	})

	t.Run("严格策略下满员也不释放", func(t *testing.T) {
		strict := NewMandatoryStationConstraint()
		strict.SetConfig(map[string]interface{}{"strict": true})

		ctx := testContext()
		ctx.AddAssignment(model.NewAssignment("2026-03-02", "张三", "机房"))
		a := model.NewAssignment("2026-03-02", "王五", "前台")
		if valid, _ := strict.EvaluateAssignment(ctx, a); valid {
			t.Error("严格策略下满员后不应释放")
		}
	})

	t.Run("全盘评估检出漏排", func(t *testing.T) {
		ctx := testContext()
		// 王五在岗但机房有空位，却被排到前台
		ctx.AddAssignment(model.NewAssignment("2026-03-02", "王五", "前台"))
		valid, _, details := c.Evaluate(ctx)
		if valid {
			t.Error("应检出指定岗位漏排")
		}
		// 2026-03-02 被排错 + 2026-03-03 未排，共 2 条
		if len(details) != 2 {
			t.Errorf("details = %d, expected 2", len(details))
		}
	})
}

func TestWorkloadBalanceConstraint(t *testing.T) {
	c := NewWorkloadBalanceConstraint()

	t.Run("极差在阈值内", func(t *testing.T) {
		ctx := testContext()
		ctx.AddAssignment(model.NewAssignment("2026-03-02", "张三", "前台"))
		if valid, _, _ := c.Evaluate(ctx); !valid {
			t.Error("极差 1 在默认阈值内")
		}
	})

	t.Run("极差超过阈值", func(t *testing.T) {
		ctx := testContext()
		for _, d := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
			ctx.AddAssignment(model.NewAssignment(d, "张三", "前台"))
		}
		valid, penalty, details := c.Evaluate(ctx)
		if valid {
			t.Error("极差 3 应超过默认阈值 2")
		}
		if penalty != 40 || len(details) != 1 {
			t.Errorf("penalty = %d, details = %d", penalty, len(details))
		}
	})

	t.Run("阈值可配置", func(t *testing.T) {
		loose := NewWorkloadBalanceConstraint()
		loose.SetConfig(map[string]interface{}{"max_spread": 5})

		ctx := testContext()
		for _, d := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
			ctx.AddAssignment(model.NewAssignment(d, "张三", "前台"))
		}
		if valid, _, _ := loose.Evaluate(ctx); !valid {
			t.Error("极差 3 在阈值 5 内")
		}
	})
}

func TestWeeklyRotationConstraint(t *testing.T) {
	c := NewWeeklyRotationConstraint()

	t.Run("周内重复在阈值内", func(t *testing.T) {
		ctx := testContext()
		ctx.AddAssignment(model.NewAssignment("2026-03-02", "张三", "前台"))
		ctx.AddAssignment(model.NewAssignment("2026-03-03", "张三", "前台"))
		if valid, _, _ := c.Evaluate(ctx); !valid {
			t.Error("周内 2 次在默认阈值内")
		}
	})

	t.Run("周内重复超过阈值", func(t *testing.T) {
		ctx := testContext()
		// 2026-03-02 至 03-04 同属一周
		for _, d := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
			ctx.AddAssignment(model.NewAssignment(d, "张三", "前台"))
		}
		valid, penalty, details := c.Evaluate(ctx)
		if valid {
			t.Error("周内 3 次应超过默认阈值 2")
		}
		if penalty != 30 || len(details) != 1 {
			t.Errorf("penalty = %d, details = %d", penalty, len(details))
		}
	})

	t.Run("跨周不累计", func(t *testing.T) {
		ctx := testContext()
		// 2026-03-06（周五）与 2026-03-09（下周一）
		ctx.AddAssignment(model.NewAssignment("2026-03-05", "张三", "前台"))
		ctx.AddAssignment(model.NewAssignment("2026-03-06", "张三", "前台"))
		ctx.AddAssignment(model.NewAssignment("2026-03-09", "张三", "前台"))
		if valid, _, _ := c.Evaluate(ctx); !valid {
			t.Error("跨周的第三次不应触发违规")
		}
	})
}

func TestRegisterDefaultConstraints(t *testing.T) {
	m := constraint.NewManager()
	RegisterDefaultConstraints(m, map[string]interface{}{"strict": true})

	if m.Count() != 7 {
		t.Errorf("默认约束数 = %d, expected 7", m.Count())
	}
	if len(m.GetByCategory(constraint.CategoryHard)) != 5 {
		t.Error("应有 5 个硬约束")
	}
	if len(m.GetByCategory(constraint.CategorySoft)) != 2 {
		t.Error("应有 2 个软约束")
	}
}
