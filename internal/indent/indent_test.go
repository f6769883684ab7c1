package indent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_Nested(t *testing.T) {
	got := Apply(`<section><h2 id="a">T</h2><p>x</p></section>`, Options{})
	want := "<section>\n  <h2 id=\"a\">T</h2>\n  <p>x</p>\n</section>"
	assert.Equal(t, want, got)
}

func TestApply_TextOnlyInlineByDefault(t *testing.T) {
	assert.Equal(t, "<p>hello</p>", Apply("<p>hello</p>", Options{}))
}

func TestApply_IndentText(t *testing.T) {
	got := Apply("<p>hello</p>", Options{IndentText: true})
	assert.Equal(t, "<p>\n  hello\n</p>", got)
}

func TestApply_VoidTags(t *testing.T) {
	got := Apply("<div><br><hr></div>", Options{})
	assert.Equal(t, "<div>\n  <br>\n  <hr>\n</div>", got)
}

func TestApply_MixedInlineContent(t *testing.T) {
	got := Apply("<p>hi <b>x</b></p>", Options{})
	assert.Equal(t, "<p>\n  hi \n  <b>x</b>\n</p>", got)
}

func TestApply_EmptyElementStaysInline(t *testing.T) {
	in := `<script src="x.js"></script>`
	assert.Equal(t, in, Apply(in, Options{}))
}

func TestApply_FullPage(t *testing.T) {
	in := "<!DOCTYPE html><html><head><title>T</title></head><body></body></html>"
	want := strings.Join([]string{
		"<!DOCTYPE html>",
		"<html>",
		"  <head>",
		"    <title>T</title>",
		"  </head>",
		"  <body></body>",
		"</html>",
	}, "\n")
	assert.Equal(t, want, Apply(in, Options{}))
}

func TestApply_CustomIndentation(t *testing.T) {
	got := Apply("<div><p>a</p></div>", Options{Indentation: "\t"})
	assert.Equal(t, "<div>\n\t<p>a</p>\n</div>", got)
}

func TestApply_DropsInterTagWhitespace(t *testing.T) {
	got := Apply("<div>\n   <p>a</p>\n</div>", Options{})
	assert.Equal(t, "<div>\n  <p>a</p>\n</div>", got)
}

// Unbalanced or crossing tags must come back byte for byte.
func TestApply_UnbalancedUnchanged(t *testing.T) {
	cases := []string{
		"<b>x",
		"x</b>",
		"<b><i>x</b></i>",
		"<div><p>a</div></p>",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, in, Apply(in, Options{}))
		})
	}
}

func TestApply_Empty(t *testing.T) {
	assert.Equal(t, "", Apply("", Options{}))
}

// Reflow only moves whitespace around; the non-whitespace bytes survive.
func TestApply_PreservesContent(t *testing.T) {
	inputs := []string{
		"<section><h2>T</h2><p>some text</p></section>",
		"<div><br><p>a</p><p>b</p></div>",
		"<ul><li>one</li><li>two</li></ul>",
	}
	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' {
				return -1
			}
			return r
		}, s)
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, strip(in), strip(Apply(in, Options{})))
		})
	}
}
