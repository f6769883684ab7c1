package tagsplit

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// TokenKind 标识扫描出的 token 类型
type TokenKind int

const (
	// TokenText 普通文本
	TokenText TokenKind = iota
	// TokenStartTag 开始标签，如 <b> 或 <img src="x">
	TokenStartTag
	// TokenEndTag 结束标签，如 </b>
	TokenEndTag
)

// Token 是分词器的输出单元
//
// Offset/End 是指向原始输入的绝对字节偏移，半开区间 [Offset, End)。
// 下游所有计算只依赖这对偏移，不存在行列换算。
type Token struct {
	Kind        TokenKind
	Name        string // 标签名（已小写），文本 token 为空
	SelfClosing bool   // 以 /> 结尾的开始标签
	Offset      int
	End         int
}

// htmlLexer 按优先级匹配：结束标签、开始标签、文本
//
// 开始标签的模式允许引号内出现 >。注释、doctype、未终结的标签等
// 都落入文本规则，分词永远不会失败。
var htmlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EndTag", Pattern: `</[a-zA-Z][a-zA-Z0-9-]*\s*>`},
	{Name: "StartTag", Pattern: `<[a-zA-Z][a-zA-Z0-9-]*(?:"[^"]*"|'[^']*'|[^>"'])*>`},
	{Name: "Text", Pattern: `[^<]+|<`},
})

var (
	htmlSymbols = htmlLexer.Symbols()
	symEndTag   = htmlSymbols["EndTag"]
	symStartTag = htmlSymbols["StartTag"]
)

// voidTags 无需结束标签的固定标签集合
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "param": {},
	"source": {}, "track": {}, "wbr": {},
}

// IsVoidTag 报告标签名是否属于自封闭集合
func IsVoidTag(name string) bool {
	_, ok := voidTags[strings.ToLower(name)]
	return ok
}

// Tokenize 将输入扫描为有序 token 流
//
// token 流连续覆盖整个输入：首个 token 从偏移 0 开始，每个 token 的 End
// 等于下一个 token 的 Offset，最后一个 token 的 End 等于输入长度。
// 相邻的文本匹配合并为一个 TokenText。空输入返回空流。
func Tokenize(input string) []Token {
	if input == "" {
		return nil
	}

	var tokens []Token
	end := 0
	if lex, err := htmlLexer.LexString("", input); err == nil {
		for {
			tok, lerr := lex.Next()
			if lerr != nil || tok.EOF() {
				break
			}
			t := classify(tok)
			// 合并相邻文本
			if t.Kind == TokenText && len(tokens) > 0 && tokens[len(tokens)-1].Kind == TokenText {
				tokens[len(tokens)-1].End = t.End
			} else {
				tokens = append(tokens, t)
			}
			end = t.End
		}
	}
	// 文本规则兜底了所有字节，扫描必达输入末尾；这里让覆盖不变式无条件成立
	if end < len(input) {
		if n := len(tokens); n > 0 && tokens[n-1].Kind == TokenText {
			tokens[n-1].End = len(input)
		} else {
			tokens = append(tokens, Token{Kind: TokenText, Offset: end, End: len(input)})
		}
	}
	return tokens
}

// classify 将词法 token 转换为带字节区间的 Token
func classify(tok lexer.Token) Token {
	t := Token{
		Offset: tok.Pos.Offset,
		End:    tok.Pos.Offset + len(tok.Value),
	}
	switch tok.Type {
	case symEndTag:
		t.Kind = TokenEndTag
		t.Name = endTagName(tok.Value)
	case symStartTag:
		t.Kind = TokenStartTag
		t.Name = startTagName(tok.Value)
		t.SelfClosing = strings.HasSuffix(tok.Value, "/>")
	default:
		t.Kind = TokenText
	}
	return t
}

// startTagName 从 "<name …>" 中提取小写标签名
func startTagName(value string) string {
	i := 1
	for i < len(value) && isNameByte(value[i]) {
		i++
	}
	return strings.ToLower(value[1:i])
}

// endTagName 从 "</name >" 中提取小写标签名
func endTagName(value string) string {
	return strings.ToLower(strings.TrimSpace(value[2 : len(value)-1]))
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-'
}
