package showcase

import (
	"strings"
	"testing"
)

func TestPagesRenderWithoutError(t *testing.T) {
	for _, entry := range Pages() {
		page := entry.Page()
		if err := page.Err(); err != nil {
			t.Errorf("%s: build error: %v", entry.Name, err)
			continue
		}
		out := page.Render()
		if !strings.HasPrefix(out, "<!DOCTYPE html>") {
			t.Errorf("%s: missing doctype prefix", entry.Name)
		}
		if !strings.Contains(out, "<title>") {
			t.Errorf("%s: missing title", entry.Name)
		}
	}
}

func TestPagesAreUnique(t *testing.T) {
	paths := map[string]bool{}
	files := map[string]bool{}
	for _, entry := range Pages() {
		if paths[entry.Path] {
			t.Errorf("duplicate path %q", entry.Path)
		}
		if files[entry.File] {
			t.Errorf("duplicate file %q", entry.File)
		}
		paths[entry.Path] = true
		files[entry.File] = true
	}
}

func TestElementsEscapesText(t *testing.T) {
	out := Elements().Render()
	if !strings.Contains(out, "&lt;, &gt;, &amp;") {
		t.Errorf("expected escaped markup characters in output")
	}
	if !strings.Contains(out, "<p>Raw content such as <strong>markup</strong> passes straight through.</p>") {
		t.Errorf("expected raw block to pass through unescaped")
	}
}
