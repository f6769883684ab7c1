package tagsplit

// SegmentKind 标识片段的输出处理方式
type SegmentKind int

const (
	// SegmentText 输出前需要 HTML 转义
	SegmentText SegmentKind = iota
	// SegmentMarkup 原样输出，不做转义
	SegmentMarkup
)

// String returns the string representation of SegmentKind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentText:
		return "text"
	case SegmentMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// Segment 是拆分结果中的一段
//
// Content 精确等于原始输入的子串 [Start, End)；按顺序拼接所有片段的
// Content 可逐字节还原输入。
type Segment struct {
	Content string
	Kind    SegmentKind
	Start   int // 起始字节偏移
	End     int // 结束字节偏移（不含）
}
