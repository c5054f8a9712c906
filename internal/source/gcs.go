package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const gcsScheme = "gs://"

// GCSSource reads one Cloud Storage object. Every Open issues a fresh
// object read, so the source is always rewindable.
type GCSSource struct {
	Client *storage.Client
	Bucket string
	Object string
}

func (g *GCSSource) Name() string     { return gcsScheme + g.Bucket + "/" + g.Object }
func (g *GCSSource) Rewindable() bool { return true }

func (g *GCSSource) Open(ctx context.Context) (io.ReadCloser, error) {
	r, err := g.Client.Bucket(g.Bucket).Object(g.Object).NewReader(ctx)
	if err != nil {
		return nil, storageError(g.Name(), err)
	}
	return r, nil
}

// ParseGCSURL splits gs://bucket/object.
func ParseGCSURL(u string) (bucket, object string, err error) {
	rest := strings.TrimPrefix(u, gcsScheme)
	i := strings.IndexByte(rest, '/')
	if rest == u || i <= 0 || i == len(rest)-1 {
		return "", "", fmt.Errorf("invalid Cloud Storage URL %q, want gs://bucket/object", u)
	}
	return rest[:i], rest[i+1:], nil
}

// NewGCSClient returns a storage client. A non-empty token is used as a
// static OAuth2 bearer token.
func NewGCSClient(ctx context.Context, token string, opts ...option.ClientOption) (*storage.Client, error) {
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{TokenType: "Bearer", AccessToken: token})
		opts = append(opts, option.WithTokenSource(ts))
	}
	c, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %v", err)
	}
	return c, nil
}

func storageError(name string, err error) error {
	if err == storage.ErrObjectNotExist || err == storage.ErrBucketNotExist {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if gerr, ok := err.(*googleapi.Error); ok {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%s: %w: %v", name, ErrAccessDenied, gerr)
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", name, ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", name, err)
}
