// Package solver 提供值班表求解器
package solver

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/paiban/zhiban/pkg/logger"
	"github.com/paiban/zhiban/pkg/model"
	"github.com/paiban/zhiban/pkg/roster/constraint"
	"github.com/paiban/zhiban/pkg/roster/fairness"
)

// Solver 求解器接口
type Solver interface {
	// Solve 生成值班表
	Solve(ctx context.Context, rosterCtx *constraint.Context) (*Result, error)

	// Name 返回求解器名称
	Name() string
}

// DayState 单日构建状态机
type DayState string

const (
	StatePending         DayState = "pending"
	StateMandatoryPlaced DayState = "mandatory_placed"
	StateMinimaFilled    DayState = "minima_filled"
	StateOptionalFilled  DayState = "optional_filled"
	StateComplete        DayState = "complete"
	StateShortfall       DayState = "shortfall"
)

// Shortfall 某日某岗位的人力缺口记录
type Shortfall struct {
	Date     string `json:"date"`
	Station  string `json:"station"`
	Needed   int    `json:"needed"`
	Assigned int    `json:"assigned"`
	Reason   string `json:"reason"`
}

// DayResult 单日求解结果
// 日一旦进入 complete/shortfall 状态就不再重开
type DayResult struct {
	Date       string      `json:"date"`
	State      DayState    `json:"state"`
	Assigned   int         `json:"assigned"`
	Shortfalls []Shortfall `json:"shortfalls,omitempty"`
}

// Statistics 排班统计
type Statistics struct {
	TotalAssignments int     `json:"total_assignments"`
	TotalDays        int     `json:"total_days"`
	FilledDays       int     `json:"filled_days"`
	FillRate         float64 `json:"fill_rate"`
	MaxPersonDays    int     `json:"max_person_days"`
	MinPersonDays    int     `json:"min_person_days"`
	DaySpread        int     `json:"day_spread"`
	AvgDaysPerPerson float64 `json:"avg_days_per_person"`
}

// Result 求解结果
type Result struct {
	RunID            uuid.UUID          `json:"run_id"`
	Schedule         *model.Schedule    `json:"schedule"`
	DayResults       []*DayResult       `json:"day_results"`
	Shortfalls       []Shortfall        `json:"shortfalls"`
	Statistics       *Statistics        `json:"statistics"`
	ConstraintResult *constraint.Result `json:"constraint_result"`
	Duration         time.Duration      `json:"duration"`
	Success          bool               `json:"success"`
	Message          string             `json:"message,omitempty"`
}

// GreedySolver 贪心求解器
// 逐日构建：先放指定岗位人员，再按公平性排序填满各岗位最低人数，
// 最后在可行性预检通过时补到上限。跨日不回溯，单日完成后不再重开
type GreedySolver struct {
	constraintManager *constraint.Manager
	logger            *logger.RosterLogger
	rng               *rand.Rand
}

// NewGreedySolver 创建贪心求解器
func NewGreedySolver(cm *constraint.Manager) *GreedySolver {
	return &GreedySolver{
		constraintManager: cm,
		logger:            logger.NewRosterLogger(),
	}
}

// Name 返回求解器名称
func (s *GreedySolver) Name() string {
	return "GreedySolver"
}

// SetSeed 启用可复现的随机打散
// 仅对公平性排序键相同的候选起作用；默认（不调用）为完全确定的字典序
func (s *GreedySolver) SetSeed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Solve 使用贪心算法生成值班表
func (s *GreedySolver) Solve(ctx context.Context, rc *constraint.Context) (*Result, error) {
	startTime := time.Now()
	runID := uuid.New()

	result := &Result{
		RunID:      runID,
		Schedule:   model.NewSchedule(),
		DayResults: make([]*DayResult, 0, len(rc.Days)),
		Shortfalls: make([]Shortfall, 0),
		Statistics: &Statistics{},
	}

	if len(rc.Plan.People) == 0 {
		return result, fmt.Errorf("没有可用人员")
	}
	if len(rc.Days) == 0 {
		result.Success = true
		result.Message = "没有可排班的工作日"
		result.Duration = time.Since(startTime)
		return result, nil
	}

	s.logger.StartRoster(runID.String(), len(rc.Plan.People), len(rc.Plan.Stations), len(rc.Days))

	// 跨日共享的公平性状态，按日历顺序串行更新以保证可复现
	counters := fairness.NewCounters()

	for _, date := range rc.Days {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		dr := s.solveDay(rc, counters, date, result.Schedule)
		result.DayResults = append(result.DayResults, dr)
		result.Shortfalls = append(result.Shortfalls, dr.Shortfalls...)
	}

	// 评估最终结果
	result.ConstraintResult = s.constraintManager.Evaluate(rc)
	result.Success = result.ConstraintResult.IsValid
	result.Duration = time.Since(startTime)
	s.fillStatistics(rc, result)

	s.logger.RosterComplete(runID.String(), result.Duration, len(result.Schedule.Assignments), len(result.Shortfalls))

	if !result.Success {
		result.Message = fmt.Sprintf("存在 %d 个硬约束违反", len(result.ConstraintResult.HardViolations))
	} else if len(result.Shortfalls) > 0 {
		result.Message = fmt.Sprintf("排班完成，存在 %d 个人力缺口", len(result.Shortfalls))
	} else {
		result.Message = fmt.Sprintf("排班成功，满足率 %.1f%%", result.Statistics.FillRate)
	}

	return result, nil
}

// solveDay 构建单日排班
func (s *GreedySolver) solveDay(rc *constraint.Context, counters *fairness.Counters, date string, schedule *model.Schedule) *DayResult {
	dr := &DayResult{Date: date, State: StatePending}

	// 候选池 = 当日在岗人员
	pool := make([]*model.Person, 0, len(rc.Plan.People))
	for _, p := range rc.Plan.People {
		if p.IsAvailable(date) {
			pool = append(pool, p)
		}
	}
	assignedToday := make(map[string]bool)

	place := func(p *model.Person, station string) {
		a := model.NewAssignment(date, p.Name, station)
		rc.AddAssignment(a)
		schedule.Add(a)
		counters.Record(p.Name, date, station)
		assignedToday[p.Name] = true
		dr.Assigned++
	}

	// 阶段一：指定岗位人员优先落位
	for _, p := range pool {
		if !p.HasMandatory() {
			continue
		}
		st := rc.GetStation(p.MandatoryStation)
		if st == nil {
			continue
		}
		if rc.StationCount(date, st.Name) >= st.MaxStaff {
			// 岗位已满员，人员按策略释放或保留，由约束层处理
			continue
		}
		a := model.NewAssignment(date, p.Name, st.Name)
		if ok, reason := s.constraintManager.CanAssign(rc, a); !ok {
			s.logger.ConstraintViolation("指定岗位落位", fmt.Sprintf("人员 %s: %s", p.Name, reason))
			continue
		}
		place(p, st.Name)
	}
	dr.State = StateMandatoryPlaced

	// 阶段二：按声明顺序填满各岗位最低人数
	for _, st := range rc.Plan.Stations {
		for rc.StationCount(date, st.Name) < st.MinStaff {
			p := s.pickCandidate(rc, counters, pool, assignedToday, date, st.Name)
			if p == nil {
				count := rc.StationCount(date, st.Name)
				sf := Shortfall{
					Date:     date,
					Station:  st.Name,
					Needed:   st.MinStaff,
					Assigned: count,
					Reason:   "可用的合格人员不足",
				}
				dr.Shortfalls = append(dr.Shortfalls, sf)
				s.logger.DayShortfall(date, st.Name, st.MinStaff, count)
				break
			}
			place(p, st.Name)
		}
	}
	dr.State = StateMinimaFilled

	// 阶段三：在不挤占未满足最低人数的前提下补到上限
	for _, st := range rc.Plan.Stations {
		for rc.StationCount(date, st.Name) < st.MaxStaff {
			if !s.optionalFillFeasible(rc, pool, assignedToday, date) {
				break
			}
			p := s.pickCandidate(rc, counters, pool, assignedToday, date, st.Name)
			if p == nil {
				break
			}
			place(p, st.Name)
		}
	}
	dr.State = StateOptionalFilled

	if len(dr.Shortfalls) > 0 {
		dr.State = StateShortfall
	} else {
		dr.State = StateComplete
	}
	return dr
}

// pickCandidate 从池中选出某岗位的最优候选
// 候选需当日未分配、具备岗位资格并通过全部硬约束
func (s *GreedySolver) pickCandidate(rc *constraint.Context, counters *fairness.Counters, pool []*model.Person, assignedToday map[string]bool, date, station string) *model.Person {
	candidates := make([]*model.Person, 0, len(pool))
	for _, p := range pool {
		if assignedToday[p.Name] {
			continue
		}
		if !p.CanWork(station) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return nil
	}

	ranked := s.rank(counters, candidates, date, station)
	for _, p := range ranked {
		a := model.NewAssignment(date, p.Name, station)
		if ok, _ := s.constraintManager.CanAssign(rc, a); ok {
			return p
		}
	}
	return nil
}

// rank 按公平性排序候选
// 启用随机种子时先打散再稳定排序，等价键之间的顺序随机化
func (s *GreedySolver) rank(counters *fairness.Counters, candidates []*model.Person, date, station string) []*model.Person {
	if s.rng == nil {
		return counters.Rank(candidates, date, station)
	}

	ranked := make([]*model.Person, len(candidates))
	copy(ranked, candidates)
	s.rng.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		ki := counters.Key(ranked[i].Name, date, station)
		kj := counters.Key(ranked[j].Name, date, station)
		if ki.TotalDays != kj.TotalDays {
			return ki.TotalDays < kj.TotalDays
		}
		return ki.WeekRepeats < kj.WeekRepeats
	})
	return ranked
}

// optionalFillFeasible 可行性预检
// 再占用一名空闲人员后，剩余池仍须覆盖全部未满足的最低人数之和
func (s *GreedySolver) optionalFillFeasible(rc *constraint.Context, pool []*model.Person, assignedToday map[string]bool, date string) bool {
	unmetMinima := 0
	for _, st := range rc.Plan.Stations {
		if count := rc.StationCount(date, st.Name); count < st.MinStaff {
			unmetMinima += st.MinStaff - count
		}
	}

	free := 0
	for _, p := range pool {
		if !assignedToday[p.Name] && p.IsAssignable() {
			free++
		}
	}

	return free-1 >= unmetMinima
}

// fillStatistics 计算统计信息
func (s *GreedySolver) fillStatistics(rc *constraint.Context, result *Result) {
	stats := result.Statistics
	stats.TotalAssignments = len(result.Schedule.Assignments)
	stats.TotalDays = len(rc.Days)

	shortfallDays := make(map[string]bool)
	for _, sf := range result.Shortfalls {
		shortfallDays[sf.Date] = true
	}
	stats.FilledDays = stats.TotalDays - len(shortfallDays)
	if stats.TotalDays > 0 {
		stats.FillRate = float64(stats.FilledDays) / float64(stats.TotalDays) * 100
	}

	personDays := result.Schedule.PersonDays()
	assignable := 0
	total := 0
	minDays, maxDays := -1, 0
	for _, p := range rc.Plan.People {
		if !p.IsAssignable() {
			continue
		}
		assignable++
		days := personDays[p.Name]
		total += days
		if minDays < 0 || days < minDays {
			minDays = days
		}
		if days > maxDays {
			maxDays = days
		}
	}
	if assignable > 0 {
		stats.MaxPersonDays = maxDays
		stats.MinPersonDays = minDays
		stats.DaySpread = maxDays - minDays
		stats.AvgDaysPerPerson = float64(total) / float64(assignable)
	}
}
