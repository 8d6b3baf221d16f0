package i18n

// defaultCatalog 内置消息目录
// 覆盖预定义错误种类的 en/zh 文案，复数种类按 one/other 分组；
// 应用可通过 WithCatalog / WithCatalogFile 覆盖任意键
func defaultCatalog() map[string]any {
	return map[string]any{
		"en": map[string]any{
			"errors": map[string]any{
				"format": "%{attribute} %{message}",
				"messages": map[string]any{
					"invalid":      "is invalid",
					"blank":        "can't be blank",
					"required":     "must exist",
					"taken":        "has already been taken",
					"not_a_number": "is not a number",
					"strict":       "failed strict validation",
					"too_long": map[string]any{
						"one":   "is too long (maximum is 1 character)",
						"other": "is too long (maximum is %{count} characters)",
					},
					"too_short": map[string]any{
						"one":   "is too short (minimum is 1 character)",
						"other": "is too short (minimum is %{count} characters)",
					},
					"wrong_length": map[string]any{
						"one":   "is the wrong length (should be 1 character)",
						"other": "is the wrong length (should be %{count} characters)",
					},
				},
			},
		},
		"zh": map[string]any{
			"errors": map[string]any{
				"format": "%{attribute}%{message}",
				"messages": map[string]any{
					"invalid":      "无效",
					"blank":        "不能为空",
					"required":     "必须存在",
					"taken":        "已被占用",
					"not_a_number": "不是数字",
					"strict":       "未通过严格校验",
					"too_long": map[string]any{
						"other": "过长（最多 %{count} 个字符）",
					},
					"too_short": map[string]any{
						"other": "过短（最少 %{count} 个字符）",
					},
					"wrong_length": map[string]any{
						"other": "长度不正确（应为 %{count} 个字符）",
					},
				},
			},
		},
	}
}
