// Package htmlgen re-exports the document builder API from
// github.com/htmlgen-dev/htmlgen/pkg/html.
//
// Typical usage:
//
//	out := htmlgen.NewPage().
//	    AddTitle("My Page").
//	    AddHeader(1, "Main Content:").
//	    AddContainer(
//	        htmlgen.NewContainer(htmlgen.Article).
//	            AddHeader(2, "Hello, World").
//	            AddParagraph("This is a simple HTML demo"),
//	    ).
//	    Render()
//
// The builder packages live under pkg/ while this package keeps the
// one-import surface for callers.
package htmlgen

import "github.com/htmlgen-dev/htmlgen/pkg/html"

// Core types.
type (
	Element       = html.Element
	Node          = html.Node
	Page          = html.Page
	Container     = html.Container
	ContainerType = html.ContainerType
	ListKind      = html.ListKind
	Renderer      = html.Renderer
	Config        = html.RendererConfig
)

// Container types.
const (
	Div     = html.Div
	Article = html.Article
	Section = html.Section
	Header  = html.Header
	Footer  = html.Footer
	Nav     = html.Nav
	Main    = html.Main
	Aside   = html.Aside
	Figure  = html.Figure
)

// List kinds.
const (
	OrderedList   = html.OrderedList
	UnorderedList = html.UnorderedList
)

// ErrHeadingLevel reports a heading level outside 1 through 6.
var ErrHeadingLevel = html.ErrHeadingLevel

// NewPage creates an empty page.
func NewPage() *Page {
	return html.NewPage()
}

// NewContainer creates an empty container of the given type.
func NewContainer(kind ContainerType) *Container {
	return html.NewContainer(kind)
}

// NewRenderer creates a configurable renderer.
func NewRenderer(config Config) *Renderer {
	return html.NewRenderer(config)
}

// Render returns the element as a dense HTML string.
func Render(el Element) string {
	return html.Render(el)
}
