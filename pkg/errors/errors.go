// Package errors 提供统一的错误处理框架
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code 错误码
type Code string

const (
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL_ERROR"

	// CodeConfig 配置错误：周期非法、引用未知岗位/人员、min_staff 大于 max_staff 等
	// 该类错误在求解开始前快速失败
	CodeConfig Code = "CONFIG_ERROR"

	// CodeInfeasibleDay 某日无法满足岗位最低人数
	// 软性问题，作为缺口记录进报告，不作为 error 抛出；此码仅用于分类
	CodeInfeasibleDay Code = "INFEASIBLE_DAY"

	// CodeValidation 事后校验发现硬约束破坏
	// 求解器正确时不应出现，但必须检查并报告；同样记录不抛出
	CodeValidation Code = "VALIDATION_FAILED"
)

// AppError 应用错误
type AppError struct {
	Code    Code   `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("[%s] %s", e.Field, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New 创建新错误
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap 包装错误
func Wrap(err error, code Code, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// Config 创建配置错误
func Config(field, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    CodeConfig,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Is 检查错误是否为特定错误码
func Is(err error, code Code) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsConfig 检查错误是否为配置错误
func IsConfig(err error) bool {
	return Is(err, CodeConfig)
}

// GetCode 获取错误码
func GetCode(err error) Code {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}
