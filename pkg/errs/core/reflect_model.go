package core

import (
	"reflect"
	"strings"
)

// ReflectModel 基于反射的 Model 适配器
// 职责：让任意结构体无需实现 Model 接口即可挂接错误集合
//
// 属性名解析规则：
// - 优先匹配字段的 json 标签名（忽略 ",omitempty" 等修饰）
// - 其次匹配字段名的 snake_case 形式
// - 未命中或属性为 AttributeBase 时返回 nil
type ReflectModel struct {
	target any
	name   string
}

// NewReflectModel 创建反射模型适配器，target 应为结构体或其指针
func NewReflectModel(target any) *ReflectModel {
	name := ""
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t != nil {
		name = t.Name()
	}
	return &ReflectModel{target: target, name: name}
}

// ModelName 实现 Model 接口
func (m *ReflectModel) ModelName() string {
	return Humanize(Underscore(m.name))
}

// AttributeValue 实现 Model 接口
func (m *ReflectModel) AttributeValue(name string) any {
	if name == AttributeBase || m.target == nil {
		return nil
	}

	v := reflect.ValueOf(m.target)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if fieldAttrName(field) == name {
			return v.Field(i).Interface()
		}
	}
	return nil
}

// HumanAttributeName 实现 Model 接口
func (m *ReflectModel) HumanAttributeName(name string) string {
	return Humanize(name)
}

// LookupScopes 实现 Model 接口
func (m *ReflectModel) LookupScopes() []string {
	if len(m.name) == 0 {
		return nil
	}
	return []string{Underscore(m.name)}
}

// fieldAttrName 解析字段对应的属性名
func fieldAttrName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag != "" && tag != "-" {
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag != "" {
			return tag
		}
	}
	return Underscore(field.Name)
}
