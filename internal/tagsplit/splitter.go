// Package tagsplit 实现标签感知的文本拆分
//
// 给定一段混有内联 HTML 标签的文本和一个标签白名单，把文本拆分为
// 交替的 text / markup 片段：白名单标签对（或自封闭标签）构成 markup
// 片段，原样输出；其余内容构成 text 片段，输出前转义。
package tagsplit

import "strings"

// Split 按白名单把输入拆分为片段序列
//
// 片段按起始偏移严格递增，互不重叠且无缝覆盖整个输入；空输入返回空序列；
// 白名单为空或没有命中任何标签时整个输入是一个 text 片段。
// 白名单匹配大小写无关。白名单开始标签在剩余输入中找不到匹配的结束标签时
// 返回 *MalformedMarkupError。
func Split(input string, whitelist []string) ([]Segment, error) {
	if input == "" {
		return nil, nil
	}

	allowed := normalizeWhitelist(whitelist)
	tokens := Tokenize(input)

	var segments []Segment
	lastEnd := 0 // 最近一个已闭合片段的结束偏移
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind != TokenStartTag {
			continue
		}
		if _, ok := allowed[tok.Name]; !ok {
			continue
		}

		// 白名单标签前的空隙补一个 text 片段；零宽空隙不产生空片段
		if tok.Offset > lastEnd {
			segments = appendSegment(segments, input, lastEnd, tok.Offset, SegmentText)
		}

		var end int
		if IsVoidTag(tok.Name) || tok.SelfClosing {
			// 自封闭标签：片段延伸到下一个 token 的起点（或输入末尾）
			end = nextTokenStart(tokens, i, len(input))
		} else {
			closeIdx, ok := matchEndTag(tokens, i)
			if !ok {
				return nil, &MalformedMarkupError{Tag: tok.Name, Offset: tok.Offset}
			}
			end = nextTokenStart(tokens, closeIdx, len(input))
			i = closeIdx // 跳过片段内部已消费的 token
		}

		segments = appendSegment(segments, input, tok.Offset, end, SegmentMarkup)
		lastEnd = end
	}

	// 末尾剩余文本
	if lastEnd < len(input) {
		segments = appendSegment(segments, input, lastEnd, len(input), SegmentText)
	}
	return segments, nil
}

// matchEndTag 为 tokens[start] 处的开始标签寻找闭合它的结束标签
//
// 同名嵌套用深度计数配对：同名开始标签加一层，同名结束标签减一层，
// 回到零层的那个结束标签才是匹配。自封闭写法的同名开始标签不加层。
func matchEndTag(tokens []Token, start int) (int, bool) {
	name := tokens[start].Name
	depth := 1
	for j := start + 1; j < len(tokens); j++ {
		switch tokens[j].Kind {
		case TokenStartTag:
			if tokens[j].Name == name && !tokens[j].SelfClosing {
				depth++
			}
		case TokenEndTag:
			if tokens[j].Name == name {
				depth--
				if depth == 0 {
					return j, true
				}
			}
		}
	}
	return 0, false
}

// nextTokenStart 返回 tokens[i] 之后一个 token 的起始偏移，没有后续 token 时为输入末尾
func nextTokenStart(tokens []Token, i, inputLen int) int {
	if i+1 < len(tokens) {
		return tokens[i+1].Offset
	}
	return inputLen
}

func appendSegment(segments []Segment, input string, start, end int, kind SegmentKind) []Segment {
	return append(segments, Segment{
		Content: input[start:end],
		Kind:    kind,
		Start:   start,
		End:     end,
	})
}

// normalizeWhitelist 小写化白名单用于大小写无关匹配；每次调用构造独立集合
func normalizeWhitelist(whitelist []string) map[string]struct{} {
	allowed := make(map[string]struct{}, len(whitelist))
	for _, name := range whitelist {
		allowed[strings.ToLower(name)] = struct{}{}
	}
	return allowed
}
