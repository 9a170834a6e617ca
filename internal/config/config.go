// Package config 提供配置管理
package config

import (
	"github.com/caarlos0/env/v11"
)

// Settings 运行时设置（从环境变量加载）
type Settings struct {
	LogLevel  string `env:"ZHIBAN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ZHIBAN_LOG_FORMAT" envDefault:"console"` // json/console

	// Seed 随机种子；0 表示使用确定性排序，不做随机打散
	Seed int64 `env:"ZHIBAN_SEED" envDefault:"0"`

	// StrictMandatory 指定岗位满员后是否禁止人员上其他岗位
	StrictMandatory bool `env:"ZHIBAN_STRICT_MANDATORY" envDefault:"false"`

	// MaxSpread 值班天数均衡的极差阈值
	MaxSpread int `env:"ZHIBAN_MAX_SPREAD" envDefault:"2"`

	// MaxRepeatsPerWeek 周内同岗位重复阈值
	MaxRepeatsPerWeek int `env:"ZHIBAN_MAX_REPEATS_PER_WEEK" envDefault:"2"`
}

// LoadSettings 从环境变量加载设置
func LoadSettings() (*Settings, error) {
	s := &Settings{}
	if err := env.Parse(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ConstraintConfig 转为约束配置映射
func (s *Settings) ConstraintConfig() map[string]interface{} {
	return map[string]interface{}{
		"strict":               s.StrictMandatory,
		"max_spread":           s.MaxSpread,
		"max_repeats_per_week": s.MaxRepeatsPerWeek,
	}
}
