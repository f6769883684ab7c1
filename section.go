package htmldoc

import (
	"fmt"
	"os"
	"strings"

	"github.com/riverfjs/htmldoc-go/internal/imgmeta"
	"github.com/riverfjs/htmldoc-go/internal/markdown"
	"github.com/riverfjs/htmldoc-go/internal/types"
)

// Section 表示文档中的一个章节
//
// 章节持有标题、标题级别、id、标题属性和有序的子节点列表。渲染时输出
// 一个 <section> 元素：先是携带 id 的 h1..h6 标题，然后按添加顺序输出
// 子节点，子章节递归渲染。
type Section struct {
	title    string
	level    int
	id       string
	attrs    []Attr
	children []Node
}

// buildSection 按插入点的默认级别和应用后的选项构建章节
//
// id 的取值顺序：WithID、属性列表中的 id、章节标题。目录链接和标题
// 渲染因此始终指向同一个锚点。
func buildSection(title string, level int, opts *sectionOptions) *Section {
	s := &Section{
		title: title,
		level: level,
		id:    opts.id,
		attrs: types.CloneAttrs(opts.attrs),
	}
	if opts.level > 0 {
		s.level = opts.level
	}
	if s.id == "" {
		for _, attr := range s.attrs {
			if attr.Key == "id" {
				s.id = attr.Value
				break
			}
		}
	}
	if s.id == "" {
		s.id = title
	}
	return s
}

// NodeType returns NodeTypeSection.
func (s *Section) NodeType() NodeType {
	return NodeTypeSection
}

// Title returns the section title.
func (s *Section) Title() string {
	return s.title
}

// Level returns the heading level as stored; rendering clamps it to 1..6.
func (s *Section) Level() int {
	return s.level
}

// ID returns the heading id.
func (s *Section) ID() string {
	return s.id
}

// Subsections returns the child sections in insertion order.
func (s *Section) Subsections() []*Section {
	var subs []*Section
	for _, child := range s.children {
		if sub, ok := child.(*Section); ok {
			subs = append(subs, sub)
		}
	}
	return subs
}

// AddText 追加一个延迟渲染的文本块
//
// 文本在生成时经过标签切分：白名单内的内联标签保留为标记，其余内容
// 转义后输出，整体包装为 <p> 元素。默认使用文档配置的 InlineTags，可
// 通过 WithTags 覆盖，或用 AsText / AsMarkup 整体转义、整体保留。
func (s *Section) AddText(text string, opts ...TextOption) {
	s.children = append(s.children, newText(text, applyTextOptions(opts...)))
}

// AddRaw 追加一段原样输出的标记
func (s *Section) AddRaw(markup string) {
	s.children = append(s.children, Raw(markup))
}

// AddSubsection 追加并返回一个子章节，默认级别为当前级别加一
func (s *Section) AddSubsection(title string, opts ...SectionOption) *Section {
	sub := buildSection(title, s.level+1, applySectionOptions(opts...))
	s.children = append(s.children, sub)
	return sub
}

// AddMarkdown 将一段 Markdown（GFM）转换为 HTML 并追加
//
// 开头的 YAML front matter（--- 分隔）可以携带 title、id、level 和
// attrs：带 title 时转换结果包装为一个子章节；不带 title 时元数据无处
// 附着，记录日志后忽略，HTML 直接追加到当前章节。
func (s *Section) AddMarkdown(source string) error {
	meta, body, err := markdown.SplitFrontMatter(source)
	if err != nil {
		return err
	}
	html, err := markdown.Convert(body)
	if err != nil {
		return err
	}

	target := s
	if meta != nil && meta.Title != "" {
		opts := []SectionOption{WithAttrs(meta.Attrs...)}
		if meta.ID != "" {
			opts = append(opts, WithID(meta.ID))
		}
		if meta.Level > 0 {
			opts = append(opts, WithLevel(meta.Level))
		}
		target = s.AddSubsection(meta.Title, opts...)
	} else if meta != nil && (meta.ID != "" || meta.Level > 0 || len(meta.Attrs) > 0) {
		Logger.Printf("front matter without title: metadata ignored")
	}
	target.AddRaw(html)
	return nil
}

// AddImage 追加一个 <img> 标签，宽高取自图片文件头部
//
// 默认打开 path 并探测尺寸：文件打不开时返回错误；头部无法解码时退化
// 为不带宽高的 <img> 并记录日志。WithSize 提供显式尺寸并跳过探测。
// src 属性使用原样的 path。
func (s *Section) AddImage(path string, alt string, opts ...ImageOption) error {
	options := applyImageOptions(opts...)
	width, height := options.width, options.height
	if !options.sizeSet {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("add image: %w", err)
		}
		info, probeErr := imgmeta.Probe(f)
		f.Close()
		if probeErr != nil {
			Logger.Printf("image %s: %v", path, probeErr)
		} else {
			width, height = info.Width, info.Height
		}
	}
	s.AddRaw(ImageTag(path, alt, width, height, options.attrs...))
	return nil
}

// generateHTML 渲染章节标题和全部子节点
func (s *Section) generateHTML(config *RenderConfig) (string, error) {
	var sb strings.Builder
	sb.WriteString("<section>")
	sb.WriteString(s.heading())
	for _, child := range s.children {
		html, err := renderNode(child, config)
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	sb.WriteString("</section>")
	return sb.String(), nil
}

// heading 渲染章节标题
//
// 存储的属性列表不包含 id 时，把章节 id 注入渲染用的有效列表；
// 存储的列表本身从不被修改。
func (s *Section) heading() string {
	attrs := s.attrs
	if !types.HasAttr(attrs, "id") {
		attrs = append([]Attr{{Key: "id", Value: s.id}}, attrs...)
	}
	return Heading(s.title, s.level, attrs...)
}
