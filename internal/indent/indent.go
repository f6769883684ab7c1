// Package indent reflows generated HTML with nesting indentation.
// It is a cosmetic transform: on input it cannot pair up cleanly it
// returns the string unchanged rather than risk corrupting markup.
package indent

import (
	"strings"

	"github.com/riverfjs/htmldoc-go/internal/tagsplit"
)

// Options controls the reflow.
type Options struct {
	Indentation string // one level of indentation, defaults to two spaces
	Newline     string // line separator, defaults to "\n"
	IndentText  bool   // break elements with text-only content onto their own lines
}

func (o Options) normalized() Options {
	if o.Indentation == "" {
		o.Indentation = "  "
	}
	if o.Newline == "" {
		o.Newline = "\n"
	}
	return o
}

// Apply reformats markup so nested elements appear on indented lines.
//
// Elements whose content contains child tags are broken up; elements with
// text-only content stay on a single line unless IndentText is set.
// Self-closing tags occupy one line. Whitespace-only text between tags is
// treated as formatting noise and dropped; all other text is kept verbatim.
// Markup with unmatched or crossing tags is returned unchanged.
func Apply(s string, opts Options) string {
	if s == "" {
		return s
	}
	opts = opts.normalized()

	tokens := tagsplit.Tokenize(s)
	match, ok := pairTokens(tokens)
	if !ok {
		return s
	}
	hasChildTags := markContainers(tokens, match)

	var b strings.Builder
	depth := 0
	wrote := false
	writeLine := func(line string) {
		if wrote {
			b.WriteString(opts.Newline)
		}
		for i := 0; i < depth; i++ {
			b.WriteString(opts.Indentation)
		}
		b.WriteString(line)
		wrote = true
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case tagsplit.TokenText:
			text := s[tok.Offset:tok.End]
			if strings.TrimSpace(text) == "" {
				continue
			}
			writeLine(text)

		case tagsplit.TokenStartTag:
			end, paired := match[i]
			if !paired {
				// void or /> syntax
				writeLine(s[tok.Offset:tok.End])
				continue
			}
			if !hasChildTags[i] && !opts.IndentText {
				// text-only content stays on one line
				writeLine(s[tok.Offset:tokens[end].End])
				i = end
				continue
			}
			writeLine(s[tok.Offset:tok.End])
			depth++

		case tagsplit.TokenEndTag:
			depth--
			writeLine(s[tok.Offset:tok.End])
		}
	}
	return b.String()
}

// pairTokens matches start and end tags with a single stack.
// ok is false when a tag is unmatched or pairs cross, in which case the
// caller must leave the input alone.
func pairTokens(tokens []tagsplit.Token) (map[int]int, bool) {
	match := make(map[int]int)
	var stack []int
	for i, tok := range tokens {
		switch tok.Kind {
		case tagsplit.TokenStartTag:
			if tagsplit.IsVoidTag(tok.Name) || tok.SelfClosing {
				continue
			}
			stack = append(stack, i)
		case tagsplit.TokenEndTag:
			if len(stack) == 0 || tokens[stack[len(stack)-1]].Name != tok.Name {
				return nil, false
			}
			match[stack[len(stack)-1]] = i
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		return nil, false
	}
	return match, true
}

// markContainers records which paired elements contain child tags.
func markContainers(tokens []tagsplit.Token, match map[int]int) map[int]bool {
	contains := make(map[int]bool)
	for start, end := range match {
		for j := start + 1; j < end; j++ {
			if tokens[j].Kind != tagsplit.TokenText {
				contains[start] = true
				break
			}
		}
	}
	return contains
}
