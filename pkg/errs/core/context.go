package core

import (
	"reflect"
)

// Context 错误上下文类型，用于存储错误记录携带的动态键值对
//
// 设计说明：
// - 基于 map[string]any，支持存储任意类型的值
// - 既承载消息插值参数（如 count、value），也承载控制选项（如 message、strict）
// - 控制选项只在构造和严格校验时消费，对外快照（Details）会剔除它们
//
// 线程安全：
// - map 类型非线程安全，多协程并发读写需要外部加锁
type Context map[string]any

// 控制选项键名，不参与匹配和机器可读快照
const (
	CtxKeyMessage = "message" // 消息覆盖：字面文案、模板函数或种类覆盖
	CtxKeyStrict  = "strict"  // 严格校验开关：bool 或 func(string) error
)

// NewContext 创建一个新的错误上下文实例
func NewContext(capacity int) Context {
	return make(Context, capacity)
}

// Set 设置键值对，空键会被忽略
func (c Context) Set(key string, value any) {
	if len(key) == 0 {
		return
	}
	c[key] = value
}

// Get 获取指定键的值
func (c Context) Get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// GetString 获取字符串值，类型不匹配时返回零值和 false
func (c Context) GetString(key string) (string, bool) {
	if v, ok := c[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

// GetBool 获取布尔值，类型不匹配时返回零值和 false
func (c Context) GetBool(key string) (bool, bool) {
	if v, ok := c[key]; ok {
		if b, ok := v.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// GetInt 获取整数值，兼容常见整型宽度
func (c Context) GetInt(key string) (int, bool) {
	switch v := c[key].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	}
	return 0, false
}

// Clone 深拷贝上下文，嵌套的 Context 和切片也会被复制
// 用于跨集合复制错误记录时切断共享状态
func (c Context) Clone() Context {
	if c == nil {
		return nil
	}
	dup := make(Context, len(c))
	for k, v := range c {
		dup[k] = cloneValue(v)
	}
	return dup
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Context:
		return val.Clone()
	case map[string]any:
		return Context(val).Clone()
	case []any:
		dup := make([]any, len(val))
		for i, e := range val {
			dup[i] = cloneValue(e)
		}
		return dup
	default:
		return v
	}
}

// Without 返回剔除指定键后的副本（浅拷贝），原上下文不变
func (c Context) Without(keys ...string) Context {
	if c == nil {
		return nil
	}
	dup := make(Context, len(c))
	for k, v := range c {
		dup[k] = v
	}
	for _, k := range keys {
		delete(dup, k)
	}
	return dup
}

// ContainsSubset 判断是否包含另一个上下文的全部键值对
// 值比较使用 reflect.DeepEqual，缺失的键视为不匹配
func (c Context) ContainsSubset(sub Context) bool {
	for k, want := range sub {
		got, ok := c[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// Equals 判断两个上下文是否完全相等
func (c Context) Equals(other Context) bool {
	if len(c) != len(other) {
		return false
	}
	return c.ContainsSubset(other)
}

// Merge 合并另一个映射的键值对，已存在的键保持不变
func (c Context) Merge(other map[string]any) {
	for k, v := range other {
		if _, ok := c[k]; !ok {
			c.Set(k, v)
		}
	}
}
