package core

// Kind 错误种类标识符，使用符号化的字符串区分错误类别
//
// 设计说明：
// - 种类只是一个查找符号，不携带任何文案；文案由翻译目录按种类解析
// - 自定义种类直接用 Kind("xxx") 声明即可，无需注册
// - 空种类在构造错误记录时会被替换为 KindInvalid
type Kind string

// 预定义的通用错误种类
const (
	KindInvalid     Kind = "invalid"      // 默认种类：值不合法
	KindBlank       Kind = "blank"        // 值为空
	KindRequired    Kind = "required"     // 缺少必填值
	KindTaken       Kind = "taken"        // 值已被占用
	KindTooLong     Kind = "too_long"     // 超出最大长度
	KindTooShort    Kind = "too_short"    // 低于最小长度
	KindWrongLength Kind = "wrong_length" // 长度不匹配
	KindNotANumber  Kind = "not_a_number" // 不是数字
	KindStrict      Kind = "strict"       // 严格校验失败（致命）
)

// AttributeBase 整体错误的属性哨兵值
// 挂在 base 上的错误描述对象本身而非某个字段，
// 完整消息不会拼接属性标签，插值时也不读取属性值
const AttributeBase = "base"

// Valid 种类是否有效（非空）
func (k Kind) Valid() bool {
	return len(k) > 0
}

// String 实现 fmt.Stringer 接口
func (k Kind) String() string {
	return string(k)
}
