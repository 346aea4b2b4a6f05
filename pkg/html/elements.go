package html

// voidElements are elements that cannot have children and have no
// closing tag. These are self-closing in HTML5.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// inlineElements are elements that are typically rendered inline and
// don't need newlines in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"abbr":   true,
	"b":      true,
	"br":     true,
	"cite":   true,
	"code":   true,
	"em":     true,
	"i":      true,
	"img":    true,
	"kbd":    true,
	"mark":   true,
	"q":      true,
	"s":      true,
	"samp":   true,
	"small":  true,
	"span":   true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"time":   true,
	"title":  true,
	"u":      true,
	"var":    true,
	"wbr":    true,
}

// isInlineElement returns true if the tag is an inline element.
func isInlineElement(tag string) bool {
	return inlineElements[tag]
}
