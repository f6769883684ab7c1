package htmldoc

import (
	"fmt"
	"strings"

	"github.com/riverfjs/htmldoc-go/internal/escape"
	"github.com/riverfjs/htmldoc-go/internal/types"
)

// writeAttrs 为每个属性写出前导空格和 key="value"，属性值转义
func writeAttrs(sb *strings.Builder, attrs []Attr) {
	for _, attr := range attrs {
		sb.WriteString(" ")
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(escape.Attr(attr.Value))
		sb.WriteString(`"`)
	}
}

// clampLevel 把标题级别收敛到 h1..h6 的范围
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

// Heading 生成一个 h1..h6 标题标记
//
// 级别越界时收敛到最近的边界。标题文本和属性值都经过转义。
func Heading(title string, level int, attrs ...Attr) string {
	level = clampLevel(level)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<h%d", level))
	writeAttrs(&sb, attrs)
	sb.WriteString(">")
	sb.WriteString(escape.Text(title))
	sb.WriteString(fmt.Sprintf("</h%d>", level))
	return sb.String()
}

// Hyperlink 生成一个 <a> 标记
//
// 显示文本默认为 target 本身，可用 WithLabel 覆盖。链接默认在新标签页
// 打开（target="_blank"），SameTab 或显式提供名为 target 的属性时不再
// 注入。
func Hyperlink(target string, opts ...LinkOption) string {
	options := applyLinkOptions(opts...)
	label := options.label
	if label == "" {
		label = target
	}

	attrs := []Attr{{Key: "href", Value: target}}
	if !options.sameTab && !types.HasAttr(options.attrs, "target") {
		attrs = append(attrs, Attr{Key: "target", Value: "_blank"})
	}
	attrs = append(attrs, options.attrs...)

	var sb strings.Builder
	sb.WriteString("<a")
	writeAttrs(&sb, attrs)
	sb.WriteString(">")
	sb.WriteString(escape.Text(label))
	sb.WriteString("</a>")
	return sb.String()
}

// Paragraph 生成一个 <p> 标记
//
// 正文经过 RenderInlineText：默认使用 DefaultConfig 的 InlineTags 作为
// 白名单，选项与 Section.AddText 一致。
func Paragraph(text string, opts ...TextOption) (string, error) {
	return newText(text, applyTextOptions(opts...)).generateHTML(DefaultConfig())
}

// ImageTag 生成一个 <img> 标记
//
// src 和 alt 经过属性转义，width/height 仅在大于零时写出。
func ImageTag(src string, alt string, width, height int, attrs ...Attr) string {
	imgAttrs := []Attr{{Key: "src", Value: src}, {Key: "alt", Value: alt}}
	if width > 0 {
		imgAttrs = append(imgAttrs, Attr{Key: "width", Value: fmt.Sprintf("%d", width)})
	}
	if height > 0 {
		imgAttrs = append(imgAttrs, Attr{Key: "height", Value: fmt.Sprintf("%d", height)})
	}
	imgAttrs = append(imgAttrs, attrs...)

	var sb strings.Builder
	sb.WriteString("<img")
	writeAttrs(&sb, imgAttrs)
	sb.WriteString(">")
	return sb.String()
}
