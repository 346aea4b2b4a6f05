package html

import "fmt"

// ErrHeadingLevel reports a heading level outside 1 through 6.
// Out-of-range levels are rejected at construction, never clamped.
var ErrHeadingLevel = fmt.Errorf("heading level must be between 1 and 6")

// ListKind selects between ordered and unordered lists.
type ListKind uint8

const (
	UnorderedList ListKind = iota // <ul>
	OrderedList                   // <ol>
)

// Tag returns the list's HTML tag name.
func (k ListKind) Tag() string {
	if k == OrderedList {
		return "ol"
	}
	return "ul"
}

// element creates an element node with the given tag and children.
func element(tag string, children ...*Node) *Node {
	node := &Node{
		Kind: KindElement,
		Tag:  tag,
	}
	return node.Append(children...)
}

// Text creates a plain text node. The text is stored verbatim and
// escaped at render time.
func Text(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node. The caller is responsible for
// the content being well-formed; use with caution on untrusted input.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// Head-scoped primitives

// Title creates a <title> element.
func Title(text string) *Node {
	return element("title", Text(text))
}

// Meta creates a <meta> element with name and content attributes.
func Meta(name, content string) *Node {
	meta := element("meta")
	meta.SetAttribute("name", name)
	meta.SetAttribute("content", content)
	return meta
}

// HeadLink creates a <link> element with rel and href attributes.
func HeadLink(rel, href string) *Node {
	link := element("link")
	link.SetAttribute("rel", rel)
	link.SetAttribute("href", href)
	return link
}

// Stylesheet creates a stylesheet <link> element.
func Stylesheet(href string) *Node {
	return HeadLink("stylesheet", href)
}

// Style creates a <style> element. The CSS text passes through
// unescaped; entity-encoding selectors like "a > b" would break them.
func Style(css string) *Node {
	return element("style", Raw(css))
}

// Body-scoped primitives

// Heading creates an <h1> through <h6> element. Levels outside 1..6
// are rejected.
func Heading(level int, text string) (*Node, error) {
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("%w, got %d", ErrHeadingLevel, level)
	}
	return element(fmt.Sprintf("h%d", level), Text(text)), nil
}

// Paragraph creates a <p> element.
func Paragraph(text string) *Node {
	return element("p", Text(text))
}

// Anchor creates an <a> element with an href attribute.
func Anchor(href, text string) *Node {
	a := element("a", Text(text))
	a.SetAttribute("href", href)
	return a
}

// Image creates an <img> element. Images are void elements and never
// receive children or a closing tag.
func Image(src, alt string) *Node {
	img := element("img")
	img.SetAttribute("src", src)
	img.SetAttribute("alt", alt)
	return img
}

// List creates an <ol> or <ul> element wrapping one <li> per item,
// in order.
func List(kind ListKind, items ...string) *Node {
	list := element(kind.Tag())
	for _, item := range items {
		list.Append(element("li", Text(item)))
	}
	return list
}

// Preformatted creates a <pre> element. The text is escaped like any
// other text but whitespace survives rendering.
func Preformatted(text string) *Node {
	return element("pre", Text(text))
}
