package errs

import (
	"sync"

	"katydid-common-model/pkg/errs/core"
	"katydid-common-model/pkg/errs/i18n"
)

// ================================
// 全局默认翻译器
// 集合未显式注入翻译器时使用，进程内共享一份
// ================================

var (
	defaultTranslatorMu sync.RWMutex
	defaultTranslator   core.Translator
)

// DefaultTranslator 获取全局默认翻译器，首次调用时惰性初始化
func DefaultTranslator() core.Translator {
	defaultTranslatorMu.RLock()
	t := defaultTranslator
	defaultTranslatorMu.RUnlock()
	if t != nil {
		return t
	}

	defaultTranslatorMu.Lock()
	defer defaultTranslatorMu.Unlock()
	if defaultTranslator == nil {
		defaultTranslator = i18n.Default()
	}
	return defaultTranslator
}

// SetDefaultTranslator 替换全局默认翻译器
// 已创建的集合不受影响，只作用于之后创建的集合
func SetDefaultTranslator(t core.Translator) {
	if t == nil {
		return
	}
	defaultTranslatorMu.Lock()
	defaultTranslator = t
	defaultTranslatorMu.Unlock()
}
