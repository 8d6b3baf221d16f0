// Package i18n 提供基于消息目录的翻译解析器实现
//
// 目录结构：按语言分组的嵌套键值（errors.messages.blank 等），
// 内置 en/zh 默认文案，可通过配置文件或内存映射覆盖/扩充
package i18n

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"katydid-common-model/pkg/errs/core"
)

// Translator 消息目录翻译器
// 职责：按键序查找模板、处理复数形式、完成命名插值
//
// 查找语义：
// - 先在请求语言下按键序查找，再回落到默认语言
// - 模板值为映射时视为复数形式组（one/other 等），
//   按 count 参数的基数复数规则选择分支
// - 所有键都未命中时使用调用方给的回退模板，
//   仍为空则取末级键名的人类可读形式，保证永远不返回原始键
type Translator struct {
	uni     *ut.UniversalTranslator
	catalog *viper.Viper
	locale  string
	logger  *zap.Logger
}

type options struct {
	locales      []locales.Translator
	locale       string
	logger       *zap.Logger
	catalogFiles []string
	catalogMaps  []map[string]any
}

// Option 翻译器配置选项
type Option func(*options)

// WithLocales 指定支持的语言集，第一个作为回落语言
func WithLocales(lts ...locales.Translator) Option {
	return func(o *options) {
		if len(lts) > 0 {
			o.locales = lts
		}
	}
}

// WithDefaultLocale 指定默认语言（未显式传 locale 时使用）
func WithDefaultLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// WithLogger 指定日志器，用于记录未命中的查找键
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCatalogFile 追加消息目录文件（YAML/JSON，顶层按语言分组）
// 后加载的覆盖先加载的，内置默认目录优先级最低
func WithCatalogFile(path string) Option {
	return func(o *options) {
		o.catalogFiles = append(o.catalogFiles, path)
	}
}

// WithCatalog 追加内存消息目录
func WithCatalog(catalog map[string]any) Option {
	return func(o *options) {
		o.catalogMaps = append(o.catalogMaps, catalog)
	}
}

// New 创建翻译器
func New(opts ...Option) (*Translator, error) {
	o := &options{
		locales: []locales.Translator{en.New(), zh.New()},
		locale:  "en",
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	uni := ut.New(o.locales[0], o.locales...)

	v := viper.New()
	if err := v.MergeConfigMap(defaultCatalog()); err != nil {
		return nil, fmt.Errorf("merge builtin catalog: %w", err)
	}
	for _, m := range o.catalogMaps {
		if err := v.MergeConfigMap(m); err != nil {
			return nil, fmt.Errorf("merge catalog map: %w", err)
		}
	}
	for _, path := range o.catalogFiles {
		fv := viper.New()
		fv.SetConfigFile(path)
		if err := fv.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read catalog file %s: %w", path, err)
		}
		if err := v.MergeConfigMap(fv.AllSettings()); err != nil {
			return nil, fmt.Errorf("merge catalog file %s: %w", path, err)
		}
	}

	return &Translator{
		uni:     uni,
		catalog: v,
		locale:  o.locale,
		logger:  o.logger,
	}, nil
}

var (
	defaultOnce sync.Once
	defaultInst *Translator
)

// Default 进程内共享的默认翻译器（内置目录，en 为默认语言）
func Default() *Translator {
	defaultOnce.Do(func() {
		defaultInst, _ = New()
	})
	return defaultInst
}

// Translate 实现 core.Translator 接口
func (t *Translator) Translate(locale string, keys []string, defaultText string, interp map[string]any) string {
	if len(locale) == 0 {
		locale = t.locale
	}
	trans, _ := t.uni.GetTranslator(locale)

	if tmpl, ok := t.resolve(locale, trans, keys, interp); ok {
		return interpolate(tmpl, interp)
	}
	// 回落到默认语言
	if locale != t.locale {
		fallback, _ := t.uni.GetTranslator(t.locale)
		if tmpl, ok := t.resolve(t.locale, fallback, keys, interp); ok {
			return interpolate(tmpl, interp)
		}
	}

	t.logger.Debug("translation missing",
		zap.String("locale", locale),
		zap.Strings("keys", keys),
	)

	if len(defaultText) > 0 {
		return interpolate(defaultText, interp)
	}
	return core.Humanize(lastSegment(keys))
}

// resolve 在单一语言下按键序查找模板
func (t *Translator) resolve(locale string, trans ut.Translator, keys []string, interp map[string]any) (string, bool) {
	for _, key := range keys {
		raw := t.catalog.Get(locale + "." + key)
		if raw == nil {
			continue
		}
		switch val := raw.(type) {
		case string:
			return val, true
		case map[string]any:
			if tmpl, ok := pickPlural(val, trans, interp); ok {
				return tmpl, true
			}
		}
	}
	return "", false
}

// pickPlural 按 count 参数的基数复数规则选择复数分支
func pickPlural(forms map[string]any, trans ut.Translator, interp map[string]any) (string, bool) {
	form := "other"
	if n, ok := numeric(interp["count"]); ok {
		form = pluralForm(trans.CardinalPluralRule(n, 0))
	}
	for _, candidate := range []string{form, "other", "one"} {
		if s, ok := forms[candidate].(string); ok {
			return s, true
		}
	}
	return "", false
}

func pluralForm(rule locales.PluralRule) string {
	switch rule {
	case locales.PluralRuleZero:
		return "zero"
	case locales.PluralRuleOne:
		return "one"
	case locales.PluralRuleTwo:
		return "two"
	case locales.PluralRuleFew:
		return "few"
	case locales.PluralRuleMany:
		return "many"
	default:
		return "other"
	}
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

var placeholderRe = regexp.MustCompile(`%\{([a-zA-Z0-9_]+)\}`)

// interpolate 替换模板中的 %{name} 占位符
// 插值表中缺失的占位符原样保留，保证解析永远不失败
func interpolate(tmpl string, interp map[string]any) string {
	if !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[2 : len(m)-1]
		if v, ok := interp[name]; ok {
			return fmt.Sprintf("%v", v)
		}
		return m
	})
}

func lastSegment(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	key := keys[len(keys)-1]
	if idx := strings.LastIndex(key, "."); idx >= 0 {
		return key[idx+1:]
	}
	return key
}
