package core

// ================================
// 核心接口定义
// 设计原则：接口隔离、依赖倒置
// ================================

// Model 宿主对象契约
// 职责：向错误记录提供展示标签、属性值和消息查找范围
//
// 说明：
// - 错误集合和错误记录都只持有 Model 的非拥有引用，不管理其生命周期
// - LookupScopes 返回消息查找的范围标识序列，最具体的在前
//   （如 []string{"admin_user", "user"}，对应类型继承链）
type Model interface {
	// ModelName 模型的人类可读名称（如 "User"）
	ModelName() string

	// AttributeValue 读取属性当前值，用于消息插值
	// 属性为 AttributeBase 时必须返回 nil
	AttributeValue(name string) any

	// HumanAttributeName 属性的人类可读标签（如 "name" -> "Name"）
	HumanAttributeName(name string) string

	// LookupScopes 消息查找范围标识序列，最具体的在前
	LookupScopes() []string
}

// Translator 翻译解析器接口
// 职责：按顺序尝试查找键，将第一个命中的模板插值后返回
//
// 约定：
// - locale 为空时使用实现方的默认语言
// - defaultText 是最终回退模板，所有键都未命中时插值后返回
// - defaultText 也为空时由实现方兜底（如取末级键名的人类可读形式），
//   任何情况下都不返回原始查找键
type Translator interface {
	Translate(locale string, keys []string, defaultText string, interp map[string]any) string
}
