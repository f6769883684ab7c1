package markdown

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/riverfjs/htmldoc-go/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(), // 文档由调用方自己编写，原始 HTML 原样保留
	),
}

// Meta 是 front matter 携带的区块元数据
type Meta struct {
	Title string
	ID    string
	Level int
	Attrs []types.Attr
}

// frontMatter 是 front matter 的 YAML 结构
type frontMatter struct {
	Title string            `yaml:"title"`
	ID    string            `yaml:"id"`
	Level int               `yaml:"level"`
	Attrs map[string]string `yaml:"attrs"`
}

// Convert 将 Markdown 转换为 HTML
func Convert(source string) (string, error) {
	md := goldmark.New(StandardOptions...)
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}

const delimiter = "---"

// SplitFrontMatter 剥离开头的 YAML front matter 并解析为 Meta
//
// 输入不以 "---" 行开头、或没有闭合分隔行时视为没有 front matter，
// meta 为 nil 且 body 等于原输入。front matter 解析失败是错误。
func SplitFrontMatter(source string) (*Meta, string, error) {
	rest, ok := strings.CutPrefix(source, delimiter+"\n")
	if !ok {
		return nil, source, nil
	}
	block, body, ok := strings.Cut(rest, "\n"+delimiter+"\n")
	if !ok {
		// 闭合分隔行允许出现在末尾且不带换行
		block, ok = strings.CutSuffix(rest, "\n"+delimiter)
		if !ok {
			return nil, source, nil
		}
		body = ""
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return nil, "", fmt.Errorf("front matter: %w", err)
	}
	return &Meta{
		Title: fm.Title,
		ID:    fm.ID,
		Level: fm.Level,
		Attrs: attrList(fm.Attrs),
	}, body, nil
}

// attrList 将属性映射展开为按键名排序的列表，保证输出稳定
func attrList(m map[string]string) []types.Attr {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]types.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, types.Attr{Key: k, Value: m[k]})
	}
	return attrs
}
