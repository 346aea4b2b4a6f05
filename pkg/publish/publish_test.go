package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/htmlgen-dev/htmlgen/pkg/html"
)

// fakePutter records PutObject calls.
type fakePutter struct {
	puts []recordedPut
	err  error
}

type recordedPut struct {
	bucket      string
	key         string
	contentType string
	body        string
}

func (f *fakePutter) PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(input.Body)
	f.puts = append(f.puts, recordedPut{
		bucket:      *input.Bucket,
		key:         *input.Key,
		contentType: *input.ContentType,
		body:        string(body),
	})
	return &s3.PutObjectOutput{}, nil
}

func TestPublishPage(t *testing.T) {
	fake := &fakePutter{}
	p := NewPublisher(fake, "my-bucket", "site")

	page := html.NewPage().AddTitle("Home").AddHeader(1, "Hello")
	key, err := p.PublishPage(context.Background(), "index.html", page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "site/index.html" {
		t.Errorf("key = %q, want %q", key, "site/index.html")
	}

	if len(fake.puts) != 1 {
		t.Fatalf("got %d puts, want 1", len(fake.puts))
	}
	put := fake.puts[0]
	if put.bucket != "my-bucket" {
		t.Errorf("bucket = %q, want my-bucket", put.bucket)
	}
	if put.contentType != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", put.contentType)
	}
	if !strings.Contains(put.body, "<title>Home</title>") {
		t.Errorf("uploaded body missing title: %q", put.body)
	}
}

func TestPublishPageNoPrefix(t *testing.T) {
	fake := &fakePutter{}
	p := NewPublisher(fake, "b", "")

	key, err := p.PublishPage(context.Background(), "index.html", html.NewPage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "index.html" {
		t.Errorf("key = %q, want index.html", key)
	}
}

func TestPublishPageRejectsBrokenPage(t *testing.T) {
	fake := &fakePutter{}
	p := NewPublisher(fake, "b", "")

	page := html.NewPage().AddHeader(0, "bad")
	if _, err := p.PublishPage(context.Background(), "index.html", page); !errors.Is(err, html.ErrHeadingLevel) {
		t.Fatalf("got %v, want ErrHeadingLevel", err)
	}
	if len(fake.puts) != 0 {
		t.Errorf("broken page must not be uploaded, got %d puts", len(fake.puts))
	}
}

func TestPublishPagePutError(t *testing.T) {
	wantErr := errors.New("denied")
	p := NewPublisher(&fakePutter{err: wantErr}, "b", "")

	if _, err := p.PublishPage(context.Background(), "x.html", html.NewPage()); !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want wrapped put error", err)
	}
}

func TestPublishDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html></html>")
	writeFile(t, dir, "site.css", "body{}")
	writeFile(t, dir, filepath.Join("sub", "page.html"), "<html></html>")

	fake := &fakePutter{}
	p := NewPublisher(fake, "b", "v1")

	n, err := p.PublishDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("uploaded %d objects, want 3", n)
	}

	byKey := map[string]recordedPut{}
	for _, put := range fake.puts {
		byKey[put.key] = put
	}
	if put, ok := byKey["v1/site.css"]; !ok || put.contentType != "text/css; charset=utf-8" {
		t.Errorf("css upload wrong: %+v", put)
	}
	if _, ok := byKey["v1/sub/page.html"]; !ok {
		t.Errorf("nested file should keep its relative path, keys: %v", keys(byKey))
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.html", "text/html; charset=utf-8"},
		{"a.css", "text/css; charset=utf-8"},
		{"a.js", "text/javascript; charset=utf-8"},
		{"a.png", "image/png"},
		{"a.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := contentType(tt.name); got != tt.want {
			t.Errorf("contentType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	full := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func keys(m map[string]recordedPut) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
