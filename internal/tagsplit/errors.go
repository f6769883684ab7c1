package tagsplit

import (
	"errors"
	"fmt"
)

// ErrMalformedMarkup 哨兵错误：白名单开始标签缺少对应的结束标签
var ErrMalformedMarkup = errors.New("malformed markup")

// MalformedMarkupError 携带未闭合标签的名称与字节偏移
type MalformedMarkupError struct {
	Tag    string
	Offset int
}

func (e *MalformedMarkupError) Error() string {
	return fmt.Sprintf("malformed markup: unclosed tag <%s> at offset %d", e.Tag, e.Offset)
}

// Unwrap 使 errors.Is(err, ErrMalformedMarkup) 成立
func (e *MalformedMarkupError) Unwrap() error {
	return ErrMalformedMarkup
}
