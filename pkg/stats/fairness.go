// Package stats 提供值班表统计分析功能
package stats

import (
	"math"
	"sort"
)

// FairnessMetrics 公平性指标
type FairnessMetrics struct {
	Spread       int     `json:"spread"`         // 天数极差（最多减最少）
	Variance     float64 `json:"variance"`       // 天数方差
	StdDev       float64 `json:"std_dev"`        // 天数标准差
	Gini         float64 `json:"gini"`           // 基尼系数 (0=完全公平, 1=完全不公平)
	AvgDays      float64 `json:"avg_days"`       // 人均值班天数
	MaxDays      int     `json:"max_days"`       // 最大值班天数
	MinDays      int     `json:"min_days"`       // 最小值班天数
	PersonStats  []PersonStat `json:"person_stats"` // 人员统计
	OverallScore float64 `json:"overall_score"`  // 综合公平性评分 (0-100)
}

// PersonStat 人员统计
type PersonStat struct {
	Name      string  `json:"name"`
	Days      int     `json:"days"`
	Deviation float64 `json:"deviation"` // 与平均值的偏差百分比
}

// FairnessAnalyzer 公平性分析器
type FairnessAnalyzer struct{}

// NewFairnessAnalyzer 创建公平性分析器
func NewFairnessAnalyzer() *FairnessAnalyzer {
	return &FairnessAnalyzer{}
}

// Analyze 分析值班天数公平性
// perPersonDays 应包含所有参与统计的人员（含 0 天者）
func (f *FairnessAnalyzer) Analyze(perPersonDays map[string]int) *FairnessMetrics {
	if len(perPersonDays) == 0 {
		return &FairnessMetrics{OverallScore: 100}
	}

	names := make([]string, 0, len(perPersonDays))
	for name := range perPersonDays {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([]float64, len(names))
	minDays, maxDays := perPersonDays[names[0]], perPersonDays[names[0]]
	sum := 0
	for i, name := range names {
		days := perPersonDays[name]
		values[i] = float64(days)
		sum += days
		if days < minDays {
			minDays = days
		}
		if days > maxDays {
			maxDays = days
		}
	}

	avg := float64(sum) / float64(len(names))
	variance := calculateVariance(values, avg)
	stdDev := math.Sqrt(variance)
	gini := calculateGini(values)

	personStats := make([]PersonStat, 0, len(names))
	for _, name := range names {
		days := perPersonDays[name]
		stat := PersonStat{Name: name, Days: days}
		if avg > 0 {
			stat.Deviation = (float64(days) - avg) / avg * 100
		}
		personStats = append(personStats, stat)
	}
	// 按天数降序，同天数按姓名
	sort.SliceStable(personStats, func(i, j int) bool {
		if personStats[i].Days != personStats[j].Days {
			return personStats[i].Days > personStats[j].Days
		}
		return personStats[i].Name < personStats[j].Name
	})

	return &FairnessMetrics{
		Spread:       maxDays - minDays,
		Variance:     variance,
		StdDev:       stdDev,
		Gini:         gini,
		AvgDays:      avg,
		MaxDays:      maxDays,
		MinDays:      minDays,
		PersonStats:  personStats,
		OverallScore: calculateOverallScore(gini, stdDev, avg),
	}
}

// calculateVariance 计算方差
func calculateVariance(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return sumSquares / float64(len(values))
}

// calculateGini 计算基尼系数
func calculateGini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	if sum == 0 {
		return 0
	}

	gini := 0.0
	for i, v := range sorted {
		gini += (2*float64(i+1) - float64(n) - 1) * v
	}
	gini = gini / (float64(n) * sum)
	return math.Max(0, math.Min(1, gini))
}

// calculateOverallScore 计算综合公平性评分
func calculateOverallScore(gini, stdDev, avg float64) float64 {
	const (
		giniWeight   = 0.6
		stdDevWeight = 0.4
	)

	giniScore := (1 - gini) * 100

	// 变异系数越低分数越高
	cvScore := 100.0
	if avg > 0 {
		cv := stdDev / avg
		cvScore = math.Max(0, 100-cv*200)
	}

	score := giniWeight*giniScore + stdDevWeight*cvScore
	return math.Max(0, math.Min(100, score))
}
