package html

import "fmt"

// ContainerType is the closed set of structural container tags.
type ContainerType uint8

const (
	Div ContainerType = iota
	Article
	Section
	Header
	Footer
	Nav
	Main
	Aside
	Figure
)

// Tag returns the lowercase HTML tag name for the container type.
func (t ContainerType) Tag() string {
	switch t {
	case Div:
		return "div"
	case Article:
		return "article"
	case Section:
		return "section"
	case Header:
		return "header"
	case Footer:
		return "footer"
	case Nav:
		return "nav"
	case Main:
		return "main"
	case Aside:
		return "aside"
	case Figure:
		return "figure"
	default:
		return "div"
	}
}

// Container is a composite element holding an ordered, append-only
// sequence of children. All Add methods mutate the container and
// return it for chaining.
type Container struct {
	node *Node
	err  error
}

// NewContainer creates an empty container of the given type.
func NewContainer(kind ContainerType) *Container {
	return &Container{
		node: element(kind.Tag()),
	}
}

// Tree implements Element.
func (c *Container) Tree() *Node {
	return c.node
}

// Err returns the first construction error recorded by a builder call,
// or nil. A call that receives invalid input appends nothing.
func (c *Container) Err() error {
	return c.err
}

// fail records the first construction error.
func (c *Container) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Add appends any element as a child.
func (c *Container) Add(el Element) *Container {
	if el != nil {
		c.node.Append(el.Tree())
	}
	return c
}

// AddHeader appends an <h1>..<h6> element. Levels outside 1..6 are
// rejected: nothing is appended and the error is available via Err.
func (c *Container) AddHeader(level int, text string) *Container {
	heading, err := Heading(level, text)
	if err != nil {
		c.fail(fmt.Errorf("add header: %w", err))
		return c
	}
	c.node.Append(heading)
	return c
}

// AddParagraph appends a <p> element.
func (c *Container) AddParagraph(text string) *Container {
	c.node.Append(Paragraph(text))
	return c
}

// AddLink appends an <a> element.
func (c *Container) AddLink(href, text string) *Container {
	c.node.Append(Anchor(href, text))
	return c
}

// AddImage appends an <img> element.
func (c *Container) AddImage(src, alt string) *Container {
	c.node.Append(Image(src, alt))
	return c
}

// AddList appends an <ol> or <ul> element with one <li> per item.
func (c *Container) AddList(kind ListKind, items ...string) *Container {
	c.node.Append(List(kind, items...))
	return c
}

// AddText appends a plain text node, escaped at render time.
func (c *Container) AddText(text string) *Container {
	c.node.Append(Text(text))
	return c
}

// AddRaw appends unescaped HTML. The caller accepts responsibility for
// its well-formedness.
func (c *Container) AddRaw(html string) *Container {
	c.node.Append(Raw(html))
	return c
}

// AddPreformatted appends a <pre> element.
func (c *Container) AddPreformatted(text string) *Container {
	c.node.Append(Preformatted(text))
	return c
}

// AddContainer appends a nested container. The child's construction
// error, if any, propagates to this container.
func (c *Container) AddContainer(child *Container) *Container {
	if child == nil {
		return c
	}
	if child.err != nil {
		c.fail(child.err)
	}
	c.node.Append(child.node)
	return c
}

// WithAttribute sets an attribute on the container's own tag. Setting
// an existing key updates its value in place.
func (c *Container) WithAttribute(key, value string) *Container {
	c.node.SetAttribute(key, value)
	return c
}

// Render returns the container and its children as an HTML string.
func (c *Container) Render() string {
	return Render(c)
}
