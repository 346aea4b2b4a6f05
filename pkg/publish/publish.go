// Package publish uploads rendered documents to S3-compatible object
// storage.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/htmlgen-dev/htmlgen/pkg/html"
)

// ObjectPutter is the subset of the S3 client used by Publisher.
// *s3.Client satisfies it; tests supply a fake.
type ObjectPutter interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads rendered HTML documents to a bucket.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
	logger *slog.Logger
}

// NewPublisher creates a Publisher for the given bucket. The prefix is
// prepended to every object key.
func NewPublisher(client ObjectPutter, bucket, prefix string) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: slog.Default().With("component", "publish"),
	}
}

// PublishPage renders the element and uploads it under name. The
// object key is returned. Construction errors on a page surface here
// rather than producing a broken upload.
func (p *Publisher) PublishPage(ctx context.Context, name string, el html.Element) (string, error) {
	if page, ok := el.(*html.Page); ok {
		if err := page.Err(); err != nil {
			return "", fmt.Errorf("publish %s: %w", name, err)
		}
	}

	return p.put(ctx, name, []byte(html.Render(el)), "text/html; charset=utf-8")
}

// PublishDir uploads every file under dir, preserving relative paths.
// It returns the number of objects uploaded.
func (p *Publisher) PublishDir(ctx context.Context, dir string) (int, error) {
	uploaded := 0

	err := filepath.WalkDir(dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		key := filepath.ToSlash(rel)
		if _, err := p.put(ctx, key, data, contentType(key)); err != nil {
			return err
		}
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("publish dir %s: %w", dir, err)
	}

	return uploaded, nil
}

// put uploads a single object and returns its key.
func (p *Publisher) put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	key := path.Join(p.prefix, name)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", p.bucket, key, err)
	}

	p.logger.Info("uploaded", "bucket", p.bucket, "key", key, "bytes", len(data))
	return key, nil
}

// contentType maps a file name to its MIME type.
func contentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".json":
		return "application/json"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	case ".ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}
