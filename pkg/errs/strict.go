package errs

import (
	"errors"

	"katydid-common-model/pkg/errs/core"
)

// ErrStrictValidation 严格校验失败的哨兵错误
// 用于 errors.Is 判断，具体文案携带在 StrictError 上
var ErrStrictValidation = errors.New("strict validation failed")

// StrictError 严格校验失败
// 在 Add 开启 strict 选项时返回，错误不会被记录到集合中，
// 调用方应立即中止当前校验流程
type StrictError struct {
	Attribute string
	Kind      core.Kind
	Message   string // 已解析的完整文案
}

// Error 实现 error 接口
func (e *StrictError) Error() string {
	if len(e.Message) == 0 {
		return ErrStrictValidation.Error()
	}
	return e.Message
}

// Unwrap 支持 errors.Is(err, ErrStrictValidation)
func (e *StrictError) Unwrap() error {
	return ErrStrictValidation
}

// strictFailure 根据 strict 选项构造致命错误
// 选项值为 true 时返回标准 StrictError；
// 为 func(string) error 时交由调用方工厂决定错误类型
func strictFailure(rec *Record, opt any) error {
	msg := rec.FullMessage()
	switch v := opt.(type) {
	case bool:
		if !v {
			return nil
		}
		return &StrictError{Attribute: rec.attribute, Kind: rec.kind, Message: msg}
	case func(string) error:
		return v(msg)
	case error:
		return v
	}
	return nil
}
