// Package html provides a compositional builder for HTML documents.
//
// Callers assemble a tree of typed elements through chained builder
// calls and serialize it to a well-formed HTML string on demand:
//
//	page := html.NewPage().
//	    AddTitle("My Page").
//	    AddHeader(1, "Main Content:").
//	    AddContainer(
//	        html.NewContainer(html.Article).
//	            AddHeader(2, "Hello, World").
//	            AddParagraph("This is a simple HTML demo"),
//	    )
//	out := page.Render()
//
// # Core Types
//
// Node is the tagged-union tree node (element, text, raw, document).
// Element is the single capability every renderable value implements.
// Page is the document root with separate head and body sequences;
// Container is a composite node over the closed ContainerType set.
// Attributes is an ordered key/value store rendered deterministically
// in insertion order.
//
// # Rendering
//
// Render and Page.Render produce dense output with the exact
//
//	<!DOCTYPE html><html><head>...</head><body>...</body></html>
//
// envelope. A configurable Renderer supports pretty-printed output and
// streaming to an io.Writer. Rendering is pure and idempotent: it
// never mutates the tree and always produces the same string for the
// same tree.
//
// # Security
//
// All text and attribute values are entity-escaped exactly once.
// Raw nodes pass through unmodified and should only carry trusted
// markup.
//
// # Errors
//
// Builder calls never fail under normal construction. The only error
// category is invalid construction input (a heading level outside
// 1..6); such calls append nothing and record the error, retrievable
// via Err on the page or container. Rendering itself is total.
package html
