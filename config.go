package htmldoc

import (
	"sync"

	"github.com/riverfjs/htmldoc-go/internal/types"
)

// 导出类型别名
type Attr = types.Attr
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// DefaultInlineTags returns the default whitelist of inline tags kept
// verbatim when rendering mixed text.
func DefaultInlineTags() []string {
	return types.DefaultInlineTags()
}
