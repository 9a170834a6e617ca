package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{"基础错误", New(CodeConfig, "配置错误"), []string{"CONFIG_ERROR", "配置错误"}},
		{"带字段", Config("period.month", "月份超出范围: %d", 13), []string{"period.month", "月份超出范围: 13"}},
		{"带底层错误", Wrap(stderrors.New("boom"), CodeInternal, "内部错误"), []string{"INTERNAL_ERROR", "boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, 应包含 %q", msg, want)
				}
			}
		})
	}
}

func TestWrap_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, CodeConfig, "读取失败")

	if !stderrors.Is(err, cause) {
		t.Error("应能通过 errors.Is 找到底层错误")
	}
}

func TestIsConfig(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"配置错误", Config("station", "岗位名称不能为空"), true},
		{"包装的配置错误", Wrap(Config("x", "y"), CodeConfig, "外层"), true},
		{"其他错误码", New(CodeValidation, "校验失败"), false},
		{"标准错误", stderrors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfig(tt.err); got != tt.expected {
				t.Errorf("IsConfig() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Config("f", "m")); got != CodeConfig {
		t.Errorf("GetCode = %s, expected %s", got, CodeConfig)
	}
	if got := GetCode(stderrors.New("boom")); got != CodeUnknown {
		t.Errorf("GetCode = %s, expected %s", got, CodeUnknown)
	}
}
