// Package source resolves input arguments to restartable record sources:
// local files, STDIN and Cloud Storage objects.
package source

import (
	"context"
	"errors"
	"strings"

	"irepeats/internal/fasta"
)

var (
	ErrNotFound     = errors.New("input not found")
	ErrAccessDenied = errors.New("access denied")
)

// Options configure remote sources.
type Options struct {
	// GCSToken, when set, is sent as an OAuth2 bearer token to Cloud Storage.
	// Otherwise application default credentials are used.
	GCSToken string
}

// Open resolves arg: "-" is STDIN, gs://bucket/object a Cloud Storage
// object, anything else a local path.
func Open(ctx context.Context, arg string, o Options) (fasta.Source, error) {
	switch {
	case arg == "-":
		return fasta.Stdin(), nil
	case strings.HasPrefix(arg, gcsScheme):
		bucket, object, err := ParseGCSURL(arg)
		if err != nil {
			return nil, err
		}
		client, err := NewGCSClient(ctx, o.GCSToken)
		if err != nil {
			return nil, err
		}
		return &GCSSource{Client: client, Bucket: bucket, Object: object}, nil
	default:
		return fasta.FileSource{Path: arg}, nil
	}
}
