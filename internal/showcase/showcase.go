// Package showcase holds the built-in demo pages served and published
// by the htmlgen CLI. Every page exercises the public builder API.
package showcase

import "github.com/htmlgen-dev/htmlgen/pkg/html"

// Entry is one showcase page: its route, output file name, and
// factory.
type Entry struct {
	Path string
	File string
	Name string
	Page func() *html.Page
}

// Pages returns the showcase entries in a stable order.
func Pages() []Entry {
	return []Entry{
		{Path: "/", File: "index.html", Name: "home", Page: Home},
		{Path: "/elements", File: "elements.html", Name: "elements", Page: Elements},
		{Path: "/nesting", File: "nesting.html", Name: "nesting", Page: Nesting},
	}
}

const siteCSS = `body { font-family: sans-serif; margin: 2rem auto; max-width: 42rem }
nav a { margin-right: 1rem }
pre { background: #f4f4f4; padding: 1rem }`

// navigation is the shared top navigation bar.
func navigation() *html.Container {
	return html.NewContainer(html.Nav).
		WithAttribute("class", "site-nav").
		AddLink("/", "Home").
		AddLink("/elements", "Elements").
		AddLink("/nesting", "Nesting")
}

// Home is the landing page.
func Home() *html.Page {
	return html.NewPage().
		AddTitle("htmlgen showcase").
		AddMeta("description", "Compositional HTML document builder for Go").
		AddStyle(siteCSS).
		AddContainer(navigation()).
		AddHeader(1, "htmlgen").
		AddParagraph("Build HTML documents from Go by chaining typed builder calls.").
		AddContainer(
			html.NewContainer(html.Section).
				WithAttribute("id", "features").
				AddHeader(2, "Features").
				AddList(html.UnorderedList,
					"Typed containers and content primitives",
					"Deterministic, insertion-ordered rendering",
					"Automatic escaping of text & attributes",
					"Raw passthrough when you know what you're doing",
				),
		)
}

// Elements demonstrates every content primitive.
func Elements() *html.Page {
	return html.NewPage().
		AddTitle("Elements — htmlgen showcase").
		AddStyle(siteCSS).
		AddContainer(navigation()).
		AddHeader(1, "Content primitives").
		AddHeader(2, "Text & paragraphs").
		AddParagraph(`Text containing <, >, & and "quotes" is escaped for you.`).
		AddHeader(2, "Links & images").
		AddLink("https://go.dev", "The Go website").
		AddImage("gopher.png", "the Go gopher").
		AddHeader(2, "Lists").
		AddList(html.OrderedList, "first", "second", "third").
		AddHeader(2, "Preformatted").
		AddPreformatted("page := html.NewPage().\n    AddTitle(\"My Page\")").
		AddHeader(2, "Raw HTML").
		AddRaw(`<p>Raw content such as <strong>markup</strong> passes straight through.</p>`)
}

// Nesting demonstrates containers inside containers.
func Nesting() *html.Page {
	return html.NewPage().
		AddTitle("Nesting — htmlgen showcase").
		AddStyle(siteCSS).
		AddContainer(navigation()).
		AddHeader(1, "Containers").
		AddContainer(
			html.NewContainer(html.Article).
				WithAttribute("class", "post").
				AddHeader(2, "An article").
				AddContainer(
					html.NewContainer(html.Section).
						AddHeader(3, "A section inside it").
						AddParagraph("Children always render inside their parent's tags."),
				).
				AddContainer(
					html.NewContainer(html.Aside).
						AddParagraph("And an aside, as a sibling of the section."),
				),
		).
		AddContainer(
			html.NewContainer(html.Footer).
				AddText("Built with htmlgen."),
		)
}
