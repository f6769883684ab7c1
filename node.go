package htmldoc

import (
	"fmt"
	"strings"

	"github.com/riverfjs/htmldoc-go/internal/types"
)

// NodeType represents the type of a document body node.
type NodeType int

const (
	// NodeTypeSection represents a section with a heading and children.
	NodeTypeSection NodeType = iota
	// NodeTypeText represents a deferred inline text block.
	NodeTypeText
	// NodeTypeRaw represents verbatim markup.
	NodeTypeRaw
	// NodeTypeTOC represents a table of contents placeholder.
	NodeTypeTOC
)

// String returns the string representation of NodeType.
func (nt NodeType) String() string {
	switch nt {
	case NodeTypeSection:
		return "section"
	case NodeTypeText:
		return "text"
	case NodeTypeRaw:
		return "raw"
	case NodeTypeTOC:
		return "toc"
	default:
		return "unknown"
	}
}

// Node represents one item in a document or section body.
type Node interface {
	NodeType() NodeType
}

// Text represents an inline text block whose rendering is deferred to
// generation time: the text is split against the inline tag whitelist,
// text runs are escaped and markup runs pass through verbatim, and the
// result is wrapped in a <p> element.
type Text struct {
	Text  string
	Attrs []Attr
	// Tags overrides the configured whitelist when TagsSet is true; an
	// explicit empty list escapes every tag in the block.
	Tags     []string
	TagsSet  bool
	AsText   bool
	AsMarkup bool
}

// NodeType returns NodeTypeText.
func (t *Text) NodeType() NodeType {
	return NodeTypeText
}

// newText builds a text node from applied text options.
func newText(text string, opts *textOptions) *Text {
	return &Text{
		Text:     text,
		Attrs:    types.CloneAttrs(opts.attrs),
		Tags:     append([]string(nil), opts.tags...),
		TagsSet:  opts.tagsSet,
		AsText:   opts.asText,
		AsMarkup: opts.asMarkup,
	}
}

// generateHTML renders the block as a <p> element against the given
// configuration.
func (t *Text) generateHTML(config *RenderConfig) (string, error) {
	whitelist := config.InlineTags
	if t.TagsSet {
		whitelist = t.Tags
	}
	body, err := RenderInlineText(t.Text, whitelist, t.AsText, t.AsMarkup)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("<p")
	writeAttrs(&sb, t.Attrs)
	sb.WriteString(">")
	sb.WriteString(body)
	sb.WriteString("</p>")
	return sb.String(), nil
}

// Raw represents markup emitted exactly as given.
type Raw string

// NodeType returns NodeTypeRaw.
func (r Raw) NodeType() NodeType {
	return NodeTypeRaw
}

// tocMarker is resolved against the document's section list at generation
// time, so a table of contents can be placed before its sections exist.
type tocMarker struct{}

// NodeType returns NodeTypeTOC.
func (tocMarker) NodeType() NodeType {
	return NodeTypeTOC
}

// renderNode renders one body node against the given configuration.
func renderNode(node Node, config *RenderConfig) (string, error) {
	switch n := node.(type) {
	case *Section:
		return n.generateHTML(config)
	case *Text:
		return n.generateHTML(config)
	case Raw:
		return string(n), nil
	default:
		return "", fmt.Errorf("unsupported node type: %s", node.NodeType())
	}
}
