package htmldoc

// documentOptions holds options for document construction.
type documentOptions struct {
	config *RenderConfig
}

// Option is a function that configures document construction.
type Option func(*documentOptions)

// WithConfig sets a custom RenderConfig for the document. A nil config
// falls back to the default.
func WithConfig(config *RenderConfig) Option {
	return func(opts *documentOptions) {
		opts.config = config
	}
}

// defaultDocumentOptions returns the default document options.
func defaultDocumentOptions() *documentOptions {
	return &documentOptions{
		config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *documentOptions {
	options := defaultDocumentOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// sectionOptions holds options for section construction.
type sectionOptions struct {
	level int
	id    string
	attrs []Attr
}

// SectionOption is a function that configures a new section.
type SectionOption func(*sectionOptions)

// WithLevel sets an explicit heading level, overriding the default for the
// insertion point (1 for top-level sections, parent level + 1 for
// subsections).
func WithLevel(level int) SectionOption {
	return func(opts *sectionOptions) {
		opts.level = level
	}
}

// WithID sets an explicit id for the section heading. The default id is the
// section title.
func WithID(id string) SectionOption {
	return func(opts *sectionOptions) {
		opts.id = id
	}
}

// WithAttrs adds attributes to the section heading.
func WithAttrs(attrs ...Attr) SectionOption {
	return func(opts *sectionOptions) {
		opts.attrs = append(opts.attrs, attrs...)
	}
}

// applySectionOptions applies the given options to a zero options value.
func applySectionOptions(opts ...SectionOption) *sectionOptions {
	options := &sectionOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// textOptions holds options for inline text blocks.
type textOptions struct {
	attrs    []Attr
	tags     []string
	tagsSet  bool
	asText   bool
	asMarkup bool
}

// TextOption is a function that configures an inline text block.
type TextOption func(*textOptions)

// WithTextAttrs adds attributes to the enclosing paragraph tag.
func WithTextAttrs(attrs ...Attr) TextOption {
	return func(opts *textOptions) {
		opts.attrs = append(opts.attrs, attrs...)
	}
}

// WithTags overrides the inline tag whitelist for this block. Calling it
// with no arguments escapes every tag in the block.
func WithTags(tags ...string) TextOption {
	return func(opts *textOptions) {
		opts.tags = tags
		opts.tagsSet = true
	}
}

// AsText renders the whole block as escaped text, ignoring the whitelist.
func AsText() TextOption {
	return func(opts *textOptions) {
		opts.asText = true
	}
}

// AsMarkup renders the whole block verbatim, ignoring the whitelist.
func AsMarkup() TextOption {
	return func(opts *textOptions) {
		opts.asMarkup = true
	}
}

// applyTextOptions applies the given options to a zero options value.
func applyTextOptions(opts ...TextOption) *textOptions {
	options := &textOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// linkOptions holds options for hyperlink generation.
type linkOptions struct {
	label   string
	sameTab bool
	attrs   []Attr
}

// LinkOption is a function that configures a hyperlink.
type LinkOption func(*linkOptions)

// WithLabel sets the visible link text. The default label is the target
// itself.
func WithLabel(label string) LinkOption {
	return func(opts *linkOptions) {
		opts.label = label
	}
}

// SameTab makes the link open in the current tab instead of a new one.
func SameTab() LinkOption {
	return func(opts *linkOptions) {
		opts.sameTab = true
	}
}

// WithLinkAttrs adds attributes to the anchor tag.
func WithLinkAttrs(attrs ...Attr) LinkOption {
	return func(opts *linkOptions) {
		opts.attrs = append(opts.attrs, attrs...)
	}
}

// applyLinkOptions applies the given options to a zero options value.
func applyLinkOptions(opts ...LinkOption) *linkOptions {
	options := &linkOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// imageOptions holds options for image embedding.
type imageOptions struct {
	attrs   []Attr
	width   int
	height  int
	sizeSet bool
}

// ImageOption is a function that configures an embedded image.
type ImageOption func(*imageOptions)

// WithImageAttrs adds attributes to the img tag.
func WithImageAttrs(attrs ...Attr) ImageOption {
	return func(opts *imageOptions) {
		opts.attrs = append(opts.attrs, attrs...)
	}
}

// WithSize sets explicit width and height and skips probing the file.
func WithSize(width, height int) ImageOption {
	return func(opts *imageOptions) {
		opts.width = width
		opts.height = height
		opts.sizeSet = true
	}
}

// applyImageOptions applies the given options to a zero options value.
func applyImageOptions(opts ...ImageOption) *imageOptions {
	options := &imageOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
