package htmldoc

import (
	"errors"
	"strings"

	"github.com/riverfjs/htmldoc-go/internal/escape"
	"github.com/riverfjs/htmldoc-go/internal/indent"
	"github.com/riverfjs/htmldoc-go/internal/tagsplit"
)

// 导出类型别名
type Segment = tagsplit.Segment
type SegmentKind = tagsplit.SegmentKind
type MalformedMarkupError = tagsplit.MalformedMarkupError

const (
	SegmentText   = tagsplit.SegmentText
	SegmentMarkup = tagsplit.SegmentMarkup
)

// ErrMalformedMarkup 表示输入中存在没有匹配结束标签的白名单标签
var ErrMalformedMarkup = tagsplit.ErrMalformedMarkup

// ErrInvalidConfiguration 表示同时请求了互斥的渲染模式
var ErrInvalidConfiguration = errors.New("invalid configuration: AsText and AsMarkup are mutually exclusive")

// SplitTags 将混合文本按白名单标签切分为段序列
//
// 输入被视为纯文本与内联 HTML 标签的混合。白名单中的标签（连同其
// 内容，直到匹配的结束标签）成为 markup 段，其余部分成为 text 段。
// 标签名匹配不区分大小写；不在白名单中的标签按字面文本处理。
//
// 参数：
//   - input: 待切分的字符串
//   - whitelist: 保留为标记的标签名列表，空列表则整个输入为一个 text 段
//
// 返回：
//   - []Segment: 按原始顺序排列的段，拼接各段 Content 可精确还原输入
//   - error: 白名单标签缺少结束标签时返回 *MalformedMarkupError
func SplitTags(input string, whitelist []string) ([]Segment, error) {
	return tagsplit.Split(input, whitelist)
}

// RenderInlineText 渲染混合文本为 HTML 安全的字符串
//
// text 段经过转义（& < >），markup 段原样输出。两个模式开关可以绕过
// 切分：allAsText 将整个输入转义，allAsMarkup 将整个输入原样输出。
//
// 参数：
//   - input: 待渲染的字符串
//   - whitelist: 保留为标记的标签名列表
//   - allAsText: 整个输入按纯文本转义，忽略白名单
//   - allAsMarkup: 整个输入按标记原样输出，忽略白名单
//
// 返回：
//   - string: 渲染结果
//   - error: 两个模式同时开启时返回 ErrInvalidConfiguration，
//     切分失败时返回 *MalformedMarkupError
func RenderInlineText(input string, whitelist []string, allAsText, allAsMarkup bool) (string, error) {
	if allAsText && allAsMarkup {
		return "", ErrInvalidConfiguration
	}
	if allAsMarkup {
		return input, nil
	}
	if allAsText {
		return escape.Text(input), nil
	}

	segments, err := tagsplit.Split(input, whitelist)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, seg := range segments {
		if seg.Kind == SegmentText {
			sb.WriteString(escape.Text(seg.Content))
		} else {
			sb.WriteString(seg.Content)
		}
	}
	return sb.String(), nil
}

// Indent 重排标记的缩进，便于人工阅读
//
// 包含子元素的元素逐行缩进展开；只含文本的元素保持单行，除非配置了
// IndentText。结构不平衡的输入原样返回。config 为 nil 时使用默认配置。
func Indent(markup string, config *RenderConfig) string {
	if config == nil {
		config = DefaultConfig()
	}
	return indent.Apply(markup, indent.Options{
		Indentation: config.Indentation,
		Newline:     config.Newline,
		IndentText:  config.IndentText,
	})
}
