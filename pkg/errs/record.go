package errs

import (
	"fmt"

	"katydid-common-model/pkg/errs/core"
)

// MessageFunc 延迟消息生成函数
// 在消息解析阶段才被调用，可根据宿主对象的当前状态生成文案
type MessageFunc func(owner core.Model, ctx core.Context) any

// messageSource 消息来源标记
// 构造时对传入的种类/文案做一次归一化，之后不再做运行时类型判断
type messageSource int

const (
	sourceKind     messageSource = iota // 符号种类，走翻译目录
	sourceLiteral                       // 字面文案，作为最终回退
	sourceDeferred                      // 延迟生成，解析时调用
)

// Record 单条错误记录
// 职责：描述一个错误的归属（属性）、种类和上下文，并按需解析展示文案
// 设计原则：值对象模式，构造后不可变；对宿主对象只持有非拥有引用
type Record struct {
	owner      core.Model
	attribute  string
	kind       core.Kind
	context    core.Context
	source     messageSource
	literal    string
	deferred   MessageFunc
	translator core.Translator
	locale     string
}

// newRecord 创建错误记录并完成消息来源归一化
//
// kindOrMessage 的归一化规则：
// - core.Kind：作为错误种类
// - string / error：作为字面文案，写入上下文的 message 键
// - MessageFunc：立即以 (owner, ctx) 调用，结果重新进入上述分支
// - nil：种类回落到 KindInvalid
// 上下文 message 键自身若是 core.Kind，则覆盖错误种类
func newRecord(owner core.Model, translator core.Translator, locale, attribute string, kindOrMessage any, ctx core.Context) *Record {
	r := &Record{
		owner:      owner,
		attribute:  attribute,
		context:    ctx,
		source:     sourceKind,
		translator: translator,
		locale:     locale,
	}

	v := kindOrMessage
	if fn, ok := callable(v); ok {
		v = fn(owner, ctx)
	}
	switch val := v.(type) {
	case nil:
	case core.Kind:
		r.kind = val
	case string:
		r.setMessage(val)
	case error:
		r.setMessage(val.Error())
	default:
		r.setMessage(fmt.Sprintf("%v", val))
	}

	// 上下文里的 message 键优先级最高
	if mv, ok := r.context[core.CtxKeyMessage]; ok {
		if fn, isFn := callable(mv); isFn {
			r.source = sourceDeferred
			r.deferred = fn
		} else if k, isKind := mv.(core.Kind); isKind {
			r.kind = k
			r.source = sourceKind
			delete(r.context, core.CtxKeyMessage)
		} else if s, isStr := mv.(string); isStr {
			r.source = sourceLiteral
			r.literal = s
		}
	}

	if !r.kind.Valid() {
		r.kind = core.KindInvalid
	}
	return r
}

// setMessage 记录字面文案并同步到上下文
func (r *Record) setMessage(text string) {
	r.source = sourceLiteral
	r.literal = text
	if r.context == nil {
		r.context = core.NewContext(1)
	}
	r.context[core.CtxKeyMessage] = text
}

// callable 判断值是否为延迟消息函数
func callable(v any) (MessageFunc, bool) {
	switch fn := v.(type) {
	case MessageFunc:
		return fn, true
	case func(core.Model, core.Context) any:
		return fn, true
	}
	return nil, false
}

// Owner 宿主对象
func (r *Record) Owner() core.Model {
	return r.owner
}

// Attribute 错误归属的属性名
func (r *Record) Attribute() string {
	return r.attribute
}

// Kind 错误种类
func (r *Record) Kind() core.Kind {
	return r.kind
}

// Context 错误上下文（原始引用，调用方不应修改）
func (r *Record) Context() core.Context {
	return r.context
}

// Message 解析错误的展示文案
//
// 查找键顺序（最具体的在前）：
//  1. errors.models.{scope}.attributes.{attribute}.{kind}
//  2. errors.models.{scope}.{kind}
//     （1、2 对每个查找范围重复）
//  3. errors.attributes.{attribute}.{kind}
//  4. errors.messages.{kind}
//
// 存在字面/延迟文案覆盖时，只保留最具体的一个键，覆盖文案作为最终回退，
// 避免全局种类文案抢占调用方给定的消息
func (r *Record) Message() string {
	interp := r.interpolation()
	keys := r.lookupKeys()

	defaultText := ""
	switch r.source {
	case sourceLiteral:
		defaultText = r.literal
	case sourceDeferred:
		switch res := r.deferred(r.owner, r.context).(type) {
		case string:
			defaultText = res
		case error:
			defaultText = res.Error()
		default:
			defaultText = fmt.Sprintf("%v", res)
		}
	}
	if r.source != sourceKind && len(keys) > 1 {
		keys = keys[:1]
	}

	return r.translator.Translate(r.locale, keys, defaultText, interp)
}

// FullMessage 解析带属性标签的完整文案
// 属性为 base 时与 Message 相同；
// 组合格式本身可以通过翻译目录覆盖，默认 "%{attribute} %{message}"
func (r *Record) FullMessage() string {
	msg := r.Message()
	if r.attribute == core.AttributeBase {
		return msg
	}

	var keys []string
	for _, scope := range r.scopes() {
		keys = append(keys,
			"errors.models."+scope+".attributes."+r.attribute+".format",
			"errors.models."+scope+".format",
		)
	}
	keys = append(keys, "errors.format")

	return r.translator.Translate(r.locale, keys, "%{attribute} %{message}", map[string]any{
		"attribute": r.humanAttribute(),
		"message":   msg,
	})
}

// Match 结构化匹配：被约束的维度必须相等，未约束的维度直接通过
// attribute 为空、kind 为空、ctx 为 nil 均视为未约束；
// ctx 按子集语义匹配（记录的上下文必须包含过滤器的全部键值对）
func (r *Record) Match(attribute string, kind core.Kind, ctx core.Context) bool {
	if len(attribute) > 0 && attribute != r.attribute {
		return false
	}
	if kind.Valid() && kind != r.kind {
		return false
	}
	if ctx != nil && !r.context.ContainsSubset(ctx) {
		return false
	}
	return true
}

// dup 深拷贝记录并重新指向新的宿主
// 翻译器与语言随目标集合走，上下文深拷贝以切断共享状态
func (r *Record) dup(owner core.Model, translator core.Translator, locale string) *Record {
	return &Record{
		owner:      owner,
		attribute:  r.attribute,
		kind:       r.kind,
		context:    r.context.Clone(),
		source:     r.source,
		literal:    r.literal,
		deferred:   r.deferred,
		translator: translator,
		locale:     locale,
	}
}

// interpolation 构建插值参数，调用方上下文优先于内置参数
func (r *Record) interpolation() map[string]any {
	interp := make(map[string]any, len(r.context)+3)
	if r.owner != nil {
		interp["model"] = r.owner.ModelName()
		interp["attribute"] = r.humanAttribute()
		if r.attribute != core.AttributeBase {
			interp["value"] = r.owner.AttributeValue(r.attribute)
		}
	} else {
		interp["attribute"] = core.Humanize(r.attribute)
	}
	for k, v := range r.context {
		if k == core.CtxKeyMessage || k == core.CtxKeyStrict {
			continue
		}
		interp[k] = v
	}
	return interp
}

// lookupKeys 构建消息查找键序列
func (r *Record) lookupKeys() []string {
	kind := string(r.kind)
	keys := make([]string, 0, len(r.scopes())*2+2)
	for _, scope := range r.scopes() {
		keys = append(keys,
			"errors.models."+scope+".attributes."+r.attribute+"."+kind,
			"errors.models."+scope+"."+kind,
		)
	}
	keys = append(keys,
		"errors.attributes."+r.attribute+"."+kind,
		"errors.messages."+kind,
	)
	return keys
}

func (r *Record) scopes() []string {
	if r.owner == nil {
		return nil
	}
	return r.owner.LookupScopes()
}

func (r *Record) humanAttribute() string {
	if r.owner != nil {
		return r.owner.HumanAttributeName(r.attribute)
	}
	return core.Humanize(r.attribute)
}
