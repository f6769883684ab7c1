package htmldoc

import (
	"fmt"
	"os"
	"strings"

	"github.com/riverfjs/htmldoc-go/internal/escape"
)

// Document 表示一个完整的 HTML 页面
//
// 文档持有页面标题、<head> 内容行、按添加顺序排列的 body 节点，以及
// 用于目录生成的顶级章节列表。所有内容的渲染都推迟到 GenerateHTML。
type Document struct {
	title     string
	headItems []string
	body      []Node
	sections  []*Section
	config    *RenderConfig
}

// Title 返回文档标题
func (d *Document) Title() string {
	return d.title
}

// Config 返回文档自己的渲染配置，调用方可直接修改
func (d *Document) Config() *RenderConfig {
	return d.config
}

// AddHeadItem 追加一行 <head> 内容，原样输出
//
// 用于样式表、脚本或 meta 标签引用。
func (d *Document) AddHeadItem(markup string) {
	d.headItems = append(d.headItems, markup)
}

// AddSection 追加并返回一个顶级章节，默认级别 1
func (d *Document) AddSection(title string, opts ...SectionOption) *Section {
	section := buildSection(title, 1, applySectionOptions(opts...))
	d.body = append(d.body, section)
	d.sections = append(d.sections, section)
	return section
}

// AddRaw 追加一段顶级原样标记
func (d *Document) AddRaw(markup string) {
	d.body = append(d.body, Raw(markup))
}

// AddParagraph 追加一个顶级文本块，语义同 Section.AddText
func (d *Document) AddParagraph(text string, opts ...TextOption) {
	d.body = append(d.body, newText(text, applyTextOptions(opts...)))
}

// AddTableOfContents 在当前位置追加目录占位
//
// 占位在 GenerateHTML 时才被解析，因此可以先放目录再添加章节。
func (d *Document) AddTableOfContents() {
	d.body = append(d.body, tocMarker{})
}

// Sections 返回按插入顺序排列的顶级章节
func (d *Document) Sections() []*Section {
	return d.sections
}

// GenerateHTML 生成完整的 HTML 页面
//
// 页面结构为 doctype、<html>、带转义 <title> 和 head 行的 <head>、
// 以及按添加顺序渲染所有节点的 <body>。配置开启 Indent 时，输出整体
// 经过缩进重排。
//
// 返回：
//   - string: 完整页面
//   - error: 任一文本块渲染失败时返回其错误
func (d *Document) GenerateHTML() (string, error) {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>")
	sb.WriteString("<html>")
	sb.WriteString("<head>")
	sb.WriteString("<title>")
	sb.WriteString(escape.Text(d.title))
	sb.WriteString("</title>")
	for _, item := range d.headItems {
		sb.WriteString(item)
	}
	sb.WriteString("</head>")
	sb.WriteString("<body>")
	for _, node := range d.body {
		if node.NodeType() == NodeTypeTOC {
			sb.WriteString(d.TableOfContents())
			continue
		}
		html, err := renderNode(node, d.config)
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	sb.WriteString("</body>")
	sb.WriteString("</html>")

	page := sb.String()
	if d.config.Indent {
		page = Indent(page, d.config)
	}
	return page, nil
}

// SaveFile 生成页面并写入文件
func (d *Document) SaveFile(path string) error {
	page, err := d.GenerateHTML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
