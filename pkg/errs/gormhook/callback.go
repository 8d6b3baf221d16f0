// Package gormhook 在 gorm 写路径上挂接模型自校验
//
// 注册后，实现 Validatable 的模型在 Create/Update 前自动校验，
// 校验不通过时以严格校验错误中止语句，错误可用
// errors.Is(err, errs.ErrStrictValidation) 识别
package gormhook

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"katydid-common-model/pkg/errs"
	"katydid-common-model/pkg/errs/core"
)

// Validatable 模型自校验契约
// Validate 返回模型当前状态的错误集合，无错误时集合为空
type Validatable interface {
	Validate() *errs.Errors
}

const callbackName = "katydid:validate"

type options struct {
	logger *zap.Logger
}

// Option 注册配置选项
type Option func(*options)

// WithLogger 指定日志器，校验失败时记录 Warn 日志
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Register 向 db 注册校验回调（Create/Update 各一个）
func Register(db *gorm.DB, opts ...Option) error {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	fn := validateCallback(o.logger)
	if err := db.Callback().Create().Before("gorm:create").Register(callbackName, fn); err != nil {
		return fmt.Errorf("register create callback: %w", err)
	}
	if err := db.Callback().Update().Before("gorm:update").Register(callbackName, fn); err != nil {
		return fmt.Errorf("register update callback: %w", err)
	}
	return nil
}

// validateCallback 构建回调函数
func validateCallback(logger *zap.Logger) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Error != nil || db.Statement == nil {
			return
		}
		target, ok := db.Statement.Dest.(Validatable)
		if !ok {
			return
		}

		e := target.Validate()
		if e == nil || !e.HasErrors() {
			return
		}

		logger.Warn("model validation failed",
			zap.String("model", fmt.Sprintf("%T", target)),
			zap.Int("errors", e.Count()),
			zap.Strings("messages", e.FullMessages()),
		)
		_ = db.AddError(&errs.StrictError{
			Attribute: core.AttributeBase,
			Kind:      core.KindStrict,
			Message:   e.Error(),
		})
	}
}
