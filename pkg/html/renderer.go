package html

import (
	"fmt"
	"io"
	"strings"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed output with indentation.
	// Dense single-line output is the default.
	Pretty bool

	// Indent is the string used for each indentation level in pretty
	// mode. Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes element trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// Render returns the element as a dense HTML string using a default
// renderer. Rendering is read-only, deterministic, and repeatable.
func Render(el Element) string {
	return NewRenderer(RendererConfig{}).RenderToString(el)
}

// RenderToString renders an element tree to a complete HTML string.
func (r *Renderer) RenderToString(el Element) string {
	var buf strings.Builder
	// strings.Builder never returns a write error.
	_ = r.RenderToWriter(&buf, el)
	return buf.String()
}

// RenderToWriter streams an element tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, el Element) error {
	if el == nil {
		return nil
	}
	return r.renderNode(w, el.Tree(), 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *Node, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case KindElement:
		return r.renderElement(w, node, depth)
	case KindText:
		_, err := io.WriteString(w, escapeText(node.Text))
		return err
	case KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case KindDocument:
		return r.renderDocument(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderDocument emits the DOCTYPE followed by the document children.
func (r *Renderer) renderDocument(w io.Writer, node *Node) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	if r.config.Pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child, 0); err != nil {
			return err
		}
	}
	return nil
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *Node, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	// Opening tag
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node.Attrs); err != nil {
		return err
	}

	// Void elements have no children and no closing tag.
	if IsVoidElement(tag) {
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if r.config.Pretty {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag) &&
		!onlyTextChildren(node)
	if r.config.Pretty && hasBlockChildren {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	// Closing tag, immediately after the children
	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	if r.config.Pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// renderAttributes writes the attribute pairs in store order, each
// preceded by a single space. Empty stores emit nothing.
func (r *Renderer) renderAttributes(w io.Writer, attrs *Attributes) error {
	if attrs.Len() == 0 {
		return nil
	}
	var werr error
	attrs.Each(func(key, value string) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value))
	})
	return werr
}

// onlyTextChildren reports whether every child is a text or raw node.
// Such elements stay on one line in pretty mode.
func onlyTextChildren(node *Node) bool {
	for _, child := range node.Children {
		if child.Kind != KindText && child.Kind != KindRaw {
			return false
		}
	}
	return true
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
