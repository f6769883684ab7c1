package htmldoc

import (
	"strings"

	"github.com/riverfjs/htmldoc-go/internal/escape"
)

// TableOfContents 生成章节目录标记
//
// 输出 <nav class="toc"> 包裹的嵌套 <ul>，链接指向各章节标题的 id，
// 子章节递归展开。没有章节时返回空字符串。通常不直接调用，而是用
// AddTableOfContents 在文档中放一个生成时解析的占位。
func (d *Document) TableOfContents() string {
	if len(d.sections) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<nav class="toc">`)
	writeTOCList(&sb, d.sections)
	sb.WriteString("</nav>")
	return sb.String()
}

// writeTOCList 写出一层章节链接列表，并递归展开子章节
func writeTOCList(sb *strings.Builder, sections []*Section) {
	sb.WriteString("<ul>")
	for _, s := range sections {
		sb.WriteString("<li>")
		sb.WriteString(`<a href="#`)
		sb.WriteString(escape.Attr(s.id))
		sb.WriteString(`">`)
		sb.WriteString(escape.Text(s.title))
		sb.WriteString("</a>")
		if subs := s.Subsections(); len(subs) > 0 {
			writeTOCList(sb, subs)
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
}
