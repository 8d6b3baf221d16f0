package errs

import (
	"strings"

	"katydid-common-model/pkg/errs/core"
)

// Errors 错误集合
// 职责：持有一个宿主对象的全部错误记录，提供添加、查询、删除和批量格式化
//
// 设计说明：
// - 有序多重集：记录顺序等于添加顺序，允许重复，删除后剩余顺序稳定
// - 集合对宿主对象只持有非拥有引用，生命周期与宿主一致
// - 非线程安全，多协程并发读写需要外部加锁
type Errors struct {
	owner      core.Model
	translator core.Translator
	locale     string
	records    []*Record
}

// Option 集合配置选项
type Option func(*Errors)

// WithTranslator 指定翻译解析器，默认使用全局默认翻译器
func WithTranslator(t core.Translator) Option {
	return func(e *Errors) {
		if t != nil {
			e.translator = t
		}
	}
}

// WithLocale 指定消息语言，默认跟随翻译器的默认语言
func WithLocale(locale string) Option {
	return func(e *Errors) {
		e.locale = locale
	}
}

// New 创建错误集合，owner 为宿主对象
func New(owner core.Model, opts ...Option) *Errors {
	e := &Errors{
		owner:      owner,
		translator: DefaultTranslator(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add 创建并追加一条错误记录
//
// kindOrMessage 可以是 core.Kind、字面文案（string/error）、MessageFunc 或 nil，
// 归一化规则见 newRecord；ctx 可以为 nil
//
// 严格校验：ctx 带 strict 选项时不记录错误，直接返回致命错误，
// 调用方应中止当前校验流程（详见 StrictError）
func (e *Errors) Add(attribute string, kindOrMessage any, ctx core.Context) (*Record, error) {
	rec := newRecord(e.owner, e.translator, e.locale, attribute, kindOrMessage, ctx)

	if opt, ok := rec.context[core.CtxKeyStrict]; ok {
		if err := strictFailure(rec, opt); err != nil {
			return nil, err
		}
	}

	e.records = append(e.records, rec)
	return rec, nil
}

// Where 查询匹配的记录子序列，顺序保持添加顺序
// attribute 为空、kind 为空、ctx 为 nil 均为通配，ctx 按子集语义匹配
func (e *Errors) Where(attribute string, kind core.Kind, ctx core.Context) []*Record {
	var matched []*Record
	for _, rec := range e.records {
		if rec.Match(attribute, kind, ctx) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Added 判断是否已记录过匹配的错误
//
// kindOrMessage 为 core.Kind 时做结构化匹配；
// 为字面文案（string）时逐条解析该属性下记录的展示文案再比对，
// 保证与「添加字面消息后再询问」的语义一致
func (e *Errors) Added(attribute string, kindOrMessage any, ctx core.Context) bool {
	switch v := kindOrMessage.(type) {
	case nil:
		return len(e.Where(attribute, "", ctx)) > 0
	case core.Kind:
		return len(e.Where(attribute, v, ctx)) > 0
	case string:
		for _, msg := range e.MessagesFor(attribute) {
			if msg == v {
				return true
			}
		}
		return false
	}
	return false
}

// Delete 删除所有匹配的记录，剩余记录顺序不变
// 返回被删记录在删除时刻解析出的展示文案
func (e *Errors) Delete(attribute string, kind core.Kind, ctx core.Context) []string {
	var removed []string
	kept := e.records[:0]
	for _, rec := range e.records {
		if rec.Match(attribute, kind, ctx) {
			removed = append(removed, rec.Message())
			continue
		}
		kept = append(kept, rec)
	}
	e.records = kept
	return removed
}

// Import 导入来自其他集合的记录
// 记录被深拷贝并重新指向本集合的宿主，原记录不受影响；
// overrides 支持用 "attribute"/"kind" 键改写归属属性和错误种类，
// 常用于把嵌套对象的错误挂到关联属性的命名空间下
func (e *Errors) Import(rec *Record, overrides core.Context) *Record {
	dup := rec.dup(e.owner, e.translator, e.locale)
	if overrides != nil {
		if attr, ok := overrides.GetString("attribute"); ok {
			dup.attribute = attr
		}
		if k, ok := overrides["kind"].(core.Kind); ok {
			dup.kind = k
		}
	}
	e.records = append(e.records, dup)
	return dup
}

// Merge 导入另一个集合的全部记录，保持其顺序，另一个集合不受影响
func (e *Errors) Merge(other *Errors) {
	if other == nil {
		return
	}
	for _, rec := range other.records {
		e.Import(rec, nil)
	}
}

// CopyFrom 用另一个集合的深拷贝替换本集合的记录
// 拷贝出的记录指向本集合的宿主，与源集合相互独立
func (e *Errors) CopyFrom(other *Errors) {
	if other == nil {
		e.records = nil
		return
	}
	e.records = make([]*Record, 0, len(other.records))
	for _, rec := range other.records {
		e.records = append(e.records, rec.dup(e.owner, e.translator, e.locale))
	}
}

// Clear 清空集合
func (e *Errors) Clear() {
	e.records = nil
}

// Records 全部记录（原始切片，调用方不应修改）
func (e *Errors) Records() []*Record {
	return e.records
}

// Count 记录数量
func (e *Errors) Count() int {
	return len(e.records)
}

// HasErrors 是否有错误
func (e *Errors) HasErrors() bool {
	return len(e.records) > 0
}

// Include 指定属性下是否有错误
func (e *Errors) Include(attribute string) bool {
	for _, rec := range e.records {
		if rec.attribute == attribute {
			return true
		}
	}
	return false
}

// AttributeNames 有错误的属性名列表，按首次出现顺序
func (e *Errors) AttributeNames() []string {
	var names []string
	seen := make(map[string]struct{}, len(e.records))
	for _, rec := range e.records {
		if _, ok := seen[rec.attribute]; ok {
			continue
		}
		seen[rec.attribute] = struct{}{}
		names = append(names, rec.attribute)
	}
	return names
}

// Messages 属性到展示文案列表的映射，每个属性内按添加顺序
func (e *Errors) Messages() map[string][]string {
	result := make(map[string][]string, len(e.records))
	for _, rec := range e.records {
		result[rec.attribute] = append(result[rec.attribute], rec.Message())
	}
	return result
}

// MessagesFor 指定属性的展示文案列表，按添加顺序
func (e *Errors) MessagesFor(attribute string) []string {
	var msgs []string
	for _, rec := range e.records {
		if rec.attribute == attribute {
			msgs = append(msgs, rec.Message())
		}
	}
	return msgs
}

// FullMessages 全部完整文案的平铺列表，按添加顺序
func (e *Errors) FullMessages() []string {
	msgs := make([]string, 0, len(e.records))
	for _, rec := range e.records {
		msgs = append(msgs, rec.FullMessage())
	}
	return msgs
}

// FullMessagesFor 指定属性的完整文案列表，按添加顺序
func (e *Errors) FullMessagesFor(attribute string) []string {
	var msgs []string
	for _, rec := range e.records {
		if rec.attribute == attribute {
			msgs = append(msgs, rec.FullMessage())
		}
	}
	return msgs
}

// GroupedFullMessages 属性到完整文案列表的映射
func (e *Errors) GroupedFullMessages() map[string][]string {
	result := make(map[string][]string, len(e.records))
	for _, rec := range e.records {
		result[rec.attribute] = append(result[rec.attribute], rec.FullMessage())
	}
	return result
}

// Details 机器可读快照：属性到 {kind, ...上下文} 列表的映射
// 上下文中的控制选项（message/strict）被剔除，不做本地化
func (e *Errors) Details() map[string][]core.Context {
	result := make(map[string][]core.Context, len(e.records))
	for _, rec := range e.records {
		detail := core.NewContext(len(rec.context) + 1)
		detail.Set("kind", rec.kind)
		for k, v := range rec.context.Without(core.CtxKeyMessage, core.CtxKeyStrict) {
			detail.Set(k, v)
		}
		result[rec.attribute] = append(result[rec.attribute], detail)
	}
	return result
}

// Group 属性到原始记录列表的映射
func (e *Errors) Group() map[string][]*Record {
	result := make(map[string][]*Record, len(e.records))
	for _, rec := range e.records {
		result[rec.attribute] = append(result[rec.attribute], rec)
	}
	return result
}

// Each 按添加顺序遍历 (属性, 文案) 对，同一属性的多条错误展开为多对
func (e *Errors) Each(fn func(attribute, message string)) {
	for _, rec := range e.records {
		fn(rec.attribute, rec.Message())
	}
}

// EachRecord 按添加顺序遍历原始记录
func (e *Errors) EachRecord(fn func(rec *Record)) {
	for _, rec := range e.records {
		fn(rec)
	}
}

// Error 实现 error 接口，便于把集合直接当错误值返回
func (e *Errors) Error() string {
	if len(e.records) == 0 {
		return "no errors"
	}
	return strings.Join(e.FullMessages(), "; ")
}
