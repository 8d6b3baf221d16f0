package formatter

import (
	"fmt"
	"strings"

	"katydid-common-model/pkg/errs"
)

// messageEstimatedLength 预估的单条文案平均长度，用于优化字符串构建时的内存分配
const messageEstimatedLength = 48

// NormalFormatter 普通文本格式化器
// 职责：把错误集合格式化为适合日志和终端展示的多行文本
type NormalFormatter struct{}

// NewNormalFormatter 创建普通文本格式化器
func NewNormalFormatter() *NormalFormatter {
	return &NormalFormatter{}
}

// Format 格式化单条记录
func (f *NormalFormatter) Format(rec *errs.Record) string {
	if rec == nil {
		return ""
	}
	return rec.FullMessage()
}

// FormatAll 格式化整个集合
func (f *NormalFormatter) FormatAll(e *errs.Errors) string {
	if e == nil || !e.HasErrors() {
		return "no errors"
	}

	msgs := e.FullMessages()
	if len(msgs) == 1 {
		return msgs[0]
	}

	var builder strings.Builder
	builder.Grow(len(msgs) * messageEstimatedLength)
	builder.WriteString(fmt.Sprintf("%d errors:\n", len(msgs)))
	for i, msg := range msgs {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, msg))
	}
	return builder.String()
}
