// Package htmldoc 以结构化调用拼装 HTML 文档
//
// 这个包面向脚本作者：用添加章节、段落、超链接的方式生成报告或静态
// 页面，不需要完整的模板引擎。
//
// 核心功能：
//   - 标签感知的文本切分：白名单内的内联标签保留为标记，其余内容转义
//   - 文档 / 章节树，所有渲染推迟到生成时
//   - 标题、超链接、段落、图片标记构建器
//   - 章节目录生成
//   - Markdown（GFM）块转换，支持 YAML front matter
//   - 生成结果的缩进重排与文件保存
//
// 主要 API：
//   - New(): 创建文档，AddSection() / AddParagraph() 添加内容
//   - Document.GenerateHTML(): 渲染完整页面，SaveFile() 写入文件
//   - SplitTags() / RenderInlineText(): 底层的标签切分与渲染
//
// 示例：
//
//	doc := htmldoc.New("Weekly Report")
//	doc.AddTableOfContents()
//	sec := doc.AddSection("Summary")
//	sec.AddText("All <b>green</b> this week.")
//
//	html, err := doc.GenerateHTML()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(html)
package htmldoc

// New 创建一个带标题的空文档
//
// 配置在构建时复制：默认取 DefaultConfig 的副本，通过 WithConfig 提供
// 的配置同样会被复制，nil 配置按默认配置处理。之后对文档配置的调整
// 通过 Config() 进行。
//
// 参数：
//   - title: 页面标题，渲染进 <head> 的 <title> 时转义
//   - opts: 文档选项
//
// 返回：
//   - *Document: 空文档，用 Add 系列方法填充内容
func New(title string, opts ...Option) *Document {
	options := applyOptions(opts...)
	config := options.config
	if config == nil {
		config = DefaultConfig()
	}
	return &Document{
		title:  title,
		config: config.Clone(),
	}
}
