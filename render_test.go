package htmldoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitTags_Basic 测试前后文本与标记段的切分
func TestSplitTags_Basic(t *testing.T) {
	segments, err := SplitTags("hi <b>there</b> now", []string{"b"})
	require.NoError(t, err)
	require.Len(t, segments, 3)

	assert.Equal(t, "hi ", segments[0].Content)
	assert.Equal(t, SegmentText, segments[0].Kind)
	assert.Equal(t, "<b>there</b>", segments[1].Content)
	assert.Equal(t, SegmentMarkup, segments[1].Kind)
	assert.Equal(t, " now", segments[2].Content)
	assert.Equal(t, SegmentText, segments[2].Kind)
}

// TestSplitTags_Malformed 测试根级导出的错误类型
func TestSplitTags_Malformed(t *testing.T) {
	_, err := SplitTags("<b>oops", []string{"b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedMarkup)

	var mErr *MalformedMarkupError
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, "b", mErr.Tag)
	assert.Equal(t, 0, mErr.Offset)
}

// TestRenderInlineText_Default 测试文本转义与标记保留的混合输出
func TestRenderInlineText_Default(t *testing.T) {
	got, err := RenderInlineText("5 < 6 <b>bold</b>", []string{"b"}, false, false)
	require.NoError(t, err)
	assert.Equal(t, "5 &lt; 6 <b>bold</b>", got)
}

// TestRenderInlineText_AllAsText 测试整体转义模式
func TestRenderInlineText_AllAsText(t *testing.T) {
	got, err := RenderInlineText("<b>x</b>", []string{"b"}, true, false)
	require.NoError(t, err)
	assert.Equal(t, "&lt;b&gt;x&lt;/b&gt;", got)
}

// TestRenderInlineText_AllAsMarkup 测试整体保留模式
func TestRenderInlineText_AllAsMarkup(t *testing.T) {
	got, err := RenderInlineText("<video>x</video>", nil, false, true)
	require.NoError(t, err)
	assert.Equal(t, "<video>x</video>", got)
}

// TestRenderInlineText_ModeConflict 测试互斥模式在扫描前报错
func TestRenderInlineText_ModeConflict(t *testing.T) {
	_, err := RenderInlineText("x", nil, true, true)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

// TestRenderInlineText_Malformed 测试切分错误向上传递
func TestRenderInlineText_Malformed(t *testing.T) {
	_, err := RenderInlineText("<b>x", []string{"b"}, false, false)
	assert.ErrorIs(t, err, ErrMalformedMarkup)
}

// TestRenderInlineText_EscapeIdempotence 测试转义结果再切分仍是单个不变的文本段
func TestRenderInlineText_EscapeIdempotence(t *testing.T) {
	inputs := []string{
		"a < b & c",
		"<b>bold</b> twice",
		"plain",
	}
	for _, in := range inputs {
		escaped, err := RenderInlineText(in, nil, true, false)
		require.NoError(t, err)

		segments, err := SplitTags(escaped, nil)
		require.NoError(t, err)
		require.Len(t, segments, 1, "input %q", in)
		assert.Equal(t, SegmentText, segments[0].Kind)
		assert.Equal(t, escaped, segments[0].Content)
	}
}

// TestIndent_DefaultConfig 测试 nil 配置下的缩进重排
func TestIndent_DefaultConfig(t *testing.T) {
	got := Indent(`<section><h2 id="a">T</h2><p>x</p></section>`, nil)
	want := "<section>\n  <h2 id=\"a\">T</h2>\n  <p>x</p>\n</section>"
	assert.Equal(t, want, got)
}

// TestIndent_CustomConfig 测试自定义缩进串
func TestIndent_CustomConfig(t *testing.T) {
	cfg := DefaultConfig().Clone()
	cfg.Indentation = "\t"
	got := Indent("<div><p>a</p></div>", cfg)
	assert.Equal(t, "<div>\n\t<p>a</p>\n</div>", got)
}

// TestIndent_UnbalancedUnchanged 测试结构不平衡的输入原样返回
func TestIndent_UnbalancedUnchanged(t *testing.T) {
	in := "<b><i>x</b></i>"
	assert.Equal(t, in, Indent(in, nil))
}
