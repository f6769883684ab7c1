package types

// Attr 表示单个 HTML 属性键值对
type Attr struct {
	Key   string
	Value string
}

// CloneAttrs 返回属性列表的独立副本
//
// 所有存储属性的 API 都经过这里复制，之后修改调用方的切片不会影响已存储的列表。
func CloneAttrs(attrs []Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(attrs))
	copy(out, attrs)
	return out
}

// HasAttr 报告属性列表中是否存在指定键
func HasAttr(attrs []Attr, key string) bool {
	for _, a := range attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

// DefaultInlineTags 返回默认的内联标签白名单（每次调用返回新切片）
func DefaultInlineTags() []string {
	return []string{"a", "b", "br", "code", "em", "i", "span", "strong", "u"}
}

// RenderConfig 渲染配置
type RenderConfig struct {
	InlineTags  []string // 文本块未指定白名单时使用的默认白名单
	Indent      bool     // 是否对生成的文档做缩进排版
	Indentation string   // 每层缩进使用的字符串
	Newline     string   // 换行符
	IndentText  bool     // 纯文本内容的元素是否也换行缩进
}

// Clone 返回配置的独立副本（切片字段深拷贝）
func (c *RenderConfig) Clone() *RenderConfig {
	clone := *c
	clone.InlineTags = append([]string(nil), c.InlineTags...)
	return &clone
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		InlineTags:  DefaultInlineTags(),
		Indent:      false,
		Indentation: "  ",
		Newline:     "\n",
		IndentText:  false,
	}
}
