package html

import (
	"errors"
	"strings"
	"testing"
)

func TestEmptyPageEnvelope(t *testing.T) {
	got := NewPage().Render()
	want := "<!DOCTYPE html><html><head></head><body></body></html>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPageHeadAndBodySequences(t *testing.T) {
	got := NewPage().
		AddTitle("My Page").
		AddMeta("author", "somebody").
		AddStylesheet("/site.css").
		AddHeader(1, "Main Content:").
		AddParagraph("hello").
		Render()

	want := "<!DOCTYPE html><html><head>" +
		"<title>My Page</title>" +
		`<meta name="author" content="somebody">` +
		`<link rel="stylesheet" href="/site.css">` +
		"</head><body>" +
		"<h1>Main Content:</h1><p>hello</p>" +
		"</body></html>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPageHeadInsertionOrderPreserved(t *testing.T) {
	got := NewPage().
		AddMeta("a", "1").
		AddTitle("late title").
		AddStyle("body{margin:0}").
		Render()

	head := got[strings.Index(got, "<head>"):strings.Index(got, "</head>")]
	metaIdx := strings.Index(head, "<meta")
	titleIdx := strings.Index(head, "<title>")
	styleIdx := strings.Index(head, "<style>")
	if !(metaIdx < titleIdx && titleIdx < styleIdx) {
		t.Errorf("head elements out of insertion order: %q", head)
	}
}

func TestPageWithContainer(t *testing.T) {
	got := NewPage().
		AddTitle("My Page").
		AddHeader(1, "Main Content:").
		AddContainer(
			NewContainer(Article).
				AddHeader(2, "Hello, World").
				AddParagraph("This is a simple HTML demo"),
		).
		Render()

	want := "<!DOCTYPE html><html><head><title>My Page</title></head><body>" +
		"<h1>Main Content:</h1>" +
		"<article><h2>Hello, World</h2><p>This is a simple HTML demo</p></article>" +
		"</body></html>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPageHeaderAtCorrectPosition(t *testing.T) {
	for level := 1; level <= 6; level++ {
		page := NewPage().AddParagraph("before").AddHeader(level, "T<>")
		got := page.Render()
		tag := "<h" + string(rune('0'+level)) + ">T&lt;&gt;</h" + string(rune('0'+level)) + ">"
		if !strings.HasSuffix(got, "<p>before</p>"+tag+"</body></html>") {
			t.Errorf("level %d: header missing or out of position, got %q", level, got)
		}
	}
}

func TestPageRejectsBadHeadingLevel(t *testing.T) {
	page := NewPage().AddHeader(0, "nope")
	if !errors.Is(page.Err(), ErrHeadingLevel) {
		t.Fatalf("Err() = %v, want ErrHeadingLevel", page.Err())
	}
	if got := page.Render(); strings.Contains(got, "nope") {
		t.Errorf("rejected heading should not be appended, got %q", got)
	}
}

func TestPageEscapingNeverLeaksMarkup(t *testing.T) {
	hostile := `<script>alert("x & y")</script>`
	got := NewPage().
		AddTitle(hostile).
		AddParagraph(hostile).
		AddText(hostile).
		Render()

	if strings.Contains(got, "<script>") {
		t.Errorf("markup characters must be escaped, got %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag, got %q", got)
	}
}

func TestPageRawBypassesEscaping(t *testing.T) {
	got := NewPage().AddRaw("<strong>Bold</strong>").Render()
	if !strings.Contains(got, "<strong>Bold</strong>") {
		t.Errorf("raw HTML should pass through unmodified, got %q", got)
	}
}

func TestPageRenderDoesNotConsumeTree(t *testing.T) {
	page := NewPage().AddTitle("A").AddHeader(1, "B")

	first := page.Render()
	page.AddParagraph("C")
	second := page.Render()

	if !strings.Contains(first, "<h1>B</h1>") {
		t.Errorf("first render incomplete: %q", first)
	}
	if !strings.Contains(second, "<p>C</p>") {
		t.Errorf("append after render should be visible: %q", second)
	}
	if strings.Contains(first, "<p>C</p>") {
		t.Errorf("first render should not see later appends: %q", first)
	}
}

func TestPageChainingMatchesSequentialCalls(t *testing.T) {
	chained := NewPage().AddTitle("A").AddHeader(1, "B").Render()

	sequential := NewPage()
	sequential.AddTitle("A")
	sequential.AddHeader(1, "B")

	if got := sequential.Render(); got != chained {
		t.Errorf("chained %q != sequential %q", chained, got)
	}
}

func BenchmarkPageRender(b *testing.B) {
	page := NewPage().
		AddTitle("Bench").
		AddStylesheet("/site.css").
		AddHeader(1, "Benchmark")
	for i := 0; i < 20; i++ {
		page.AddContainer(
			NewContainer(Section).
				AddHeader(2, "Section").
				AddParagraph("some text with <markup> & entities").
				AddList(UnorderedList, "one", "two", "three"),
		)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = page.Render()
	}
}
