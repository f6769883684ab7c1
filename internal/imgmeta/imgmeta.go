// Package imgmeta 读取图片头部的宽高与格式信息
package imgmeta

import (
	"fmt"
	"image"
	"io"

	// 注册 DecodeConfig 可识别的格式
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Info 图片元数据
type Info struct {
	Width  int
	Height int
	Format string // "png"、"jpeg"、"gif" 或 "webp"
}

// Probe 从 reader 解码图片头部
//
// 只读取头部，不解码像素数据。
func Probe(r io.Reader) (*Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}
	return &Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
