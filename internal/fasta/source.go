// internal/fasta/source.go
package fasta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnseekableSource is returned when a stream must be restarted but its
// source can only be read once (a pipe, a network body).
var ErrUnseekableSource = errors.New("source cannot be restarted")

// Source is where a Stream reads records from. Open may be called once per
// pass; sources that are not Rewindable only support a single Open.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
	Rewindable() bool
}

// FileSource reads a plain or gzip-compressed file from disk.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string     { return f.Path }
func (f FileSource) Rewindable() bool { return true }

func (f FileSource) Open(context.Context) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// ReaderSource adapts an io.Reader. It is rewindable only when the reader
// is an io.ReadSeeker that actually supports seeking.
type ReaderSource struct {
	name   string
	r      io.Reader
	seeker io.Seeker
	opened bool
}

// NewReaderSource wraps r. A pipe on stdin reports Rewindable()==false,
// while stdin redirected from a regular file can be rewound.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	rs := &ReaderSource{name: name, r: r}
	if s, ok := r.(io.Seeker); ok {
		if _, err := s.Seek(0, io.SeekCurrent); err == nil {
			rs.seeker = s
		}
	}
	return rs
}

// Stdin returns a source over os.Stdin.
func Stdin() *ReaderSource { return NewReaderSource("-", os.Stdin) }

func (r *ReaderSource) Name() string     { return r.name }
func (r *ReaderSource) Rewindable() bool { return r.seeker != nil }

func (r *ReaderSource) Open(context.Context) (io.ReadCloser, error) {
	if r.opened {
		if r.seeker == nil {
			return nil, fmt.Errorf("%s: %w", r.name, ErrUnseekableSource)
		}
		if _, err := r.seeker.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%s: rewind: %w", r.name, err)
		}
	}
	r.opened = true
	return io.NopCloser(r.r), nil
}
