package core

import (
	"strings"
	"unicode"
)

// Humanize 将 snake_case 标识符转换为人类可读标签
// 如 "first_name" -> "First name"，"base" 原样首字母大写
func Humanize(name string) string {
	if len(name) == 0 {
		return ""
	}
	s := strings.ReplaceAll(name, "_", " ")
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Underscore 将 CamelCase 标识符转换为 snake_case
// 如 "AdminUser" -> "admin_user"，用于生成消息查找范围标识
func Underscore(name string) string {
	if len(name) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// 单词边界：前一个是小写，或后一个是小写（处理连续大写缩写）
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
