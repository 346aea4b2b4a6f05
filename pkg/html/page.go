package html

import "fmt"

// Page is the document root. Head and body content are kept in
// separate ordered sequences; the method surface decides which
// sequence an element joins, so head and body never cross-mix.
type Page struct {
	head []*Node
	body []*Node
	err  error
}

// NewPage creates an empty page with no head or body content.
func NewPage() *Page {
	return &Page{}
}

// Tree implements Element. The subtree is the full document envelope:
// DOCTYPE, <html>, and exactly one <head> and one <body>.
func (p *Page) Tree() *Node {
	head := element("head", p.head...)
	body := element("body", p.body...)
	return &Node{
		Kind:     KindDocument,
		Children: []*Node{element("html", head, body)},
	}
}

// Err returns the first construction error recorded by a builder call,
// or nil.
func (p *Page) Err() error {
	return p.err
}

func (p *Page) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Head-scoped appends

// AddTitle appends a <title> element to the head.
func (p *Page) AddTitle(text string) *Page {
	p.head = append(p.head, Title(text))
	return p
}

// AddMeta appends a <meta> element to the head.
func (p *Page) AddMeta(name, content string) *Page {
	p.head = append(p.head, Meta(name, content))
	return p
}

// AddHeadLink appends a <link> element to the head.
func (p *Page) AddHeadLink(rel, href string) *Page {
	p.head = append(p.head, HeadLink(rel, href))
	return p
}

// AddStylesheet appends a stylesheet <link> element to the head.
func (p *Page) AddStylesheet(href string) *Page {
	p.head = append(p.head, Stylesheet(href))
	return p
}

// AddStyle appends a <style> element to the head.
func (p *Page) AddStyle(css string) *Page {
	p.head = append(p.head, Style(css))
	return p
}

// Body-scoped appends

// AddHeader appends an <h1>..<h6> element to the body. Levels outside
// 1..6 are rejected: nothing is appended and the error is available
// via Err.
func (p *Page) AddHeader(level int, text string) *Page {
	heading, err := Heading(level, text)
	if err != nil {
		p.fail(fmt.Errorf("add header: %w", err))
		return p
	}
	p.body = append(p.body, heading)
	return p
}

// AddParagraph appends a <p> element to the body.
func (p *Page) AddParagraph(text string) *Page {
	p.body = append(p.body, Paragraph(text))
	return p
}

// AddLink appends an <a> element to the body.
func (p *Page) AddLink(href, text string) *Page {
	p.body = append(p.body, Anchor(href, text))
	return p
}

// AddImage appends an <img> element to the body.
func (p *Page) AddImage(src, alt string) *Page {
	p.body = append(p.body, Image(src, alt))
	return p
}

// AddList appends an <ol> or <ul> element to the body.
func (p *Page) AddList(kind ListKind, items ...string) *Page {
	p.body = append(p.body, List(kind, items...))
	return p
}

// AddText appends a plain text node to the body.
func (p *Page) AddText(text string) *Page {
	p.body = append(p.body, Text(text))
	return p
}

// AddRaw appends unescaped HTML to the body.
func (p *Page) AddRaw(html string) *Page {
	p.body = append(p.body, Raw(html))
	return p
}

// AddPreformatted appends a <pre> element to the body.
func (p *Page) AddPreformatted(text string) *Page {
	p.body = append(p.body, Preformatted(text))
	return p
}

// AddContainer appends a container to the body. The container's
// construction error, if any, propagates to the page.
func (p *Page) AddContainer(c *Container) *Page {
	if c == nil {
		return p
	}
	if c.err != nil {
		p.fail(c.err)
	}
	p.body = append(p.body, c.node)
	return p
}

// Add appends any element to the body.
func (p *Page) Add(el Element) *Page {
	if el != nil {
		p.body = append(p.body, el.Tree())
	}
	return p
}

// Render returns the complete document as an HTML string.
func (p *Page) Render() string {
	return Render(p)
}
