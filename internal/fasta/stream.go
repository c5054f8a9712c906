// internal/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"

	"irepeats/internal/residue"
)

// Record is one labelled sequence. Seq is only valid until the next call to
// Stream.Next; copy it to keep it.
type Record struct {
	Index   int    // 0-based position in the source
	ID      string // first whitespace-delimited header token
	Label   string // full header text after '>'
	Seq     []byte
	Clipped bool // residue text exceeded the configured maximum
}

// Option configures a Stream.
type Option func(*Stream)

// WithMaxResidues clips every record to at most n residues (0 = unlimited).
func WithMaxResidues(n int) Option {
	return func(s *Stream) {
		if n > 0 {
			s.maxResidues = n
		}
	}
}

// pending carries the header seen one line late and the residues collected
// since, between successive Next calls.
type pending struct {
	open    bool
	label   string
	seq     []byte
	clipped bool
}

func (p *pending) start(hdr []byte, buf []byte) {
	p.open = true
	p.label = string(bytes.TrimSpace(hdr))
	p.seq = buf[:0]
	p.clipped = false
}

func (p *pending) add(line []byte, max int) {
	if max > 0 {
		room := max - len(p.seq)
		if room <= 0 {
			if len(line) > 0 {
				p.clipped = true
			}
			return
		}
		if len(line) > room {
			line = line[:room]
			p.clipped = true
		}
	}
	n := len(p.seq)
	p.seq = append(p.seq, line...)
	for i := n; i < len(p.seq); i++ {
		p.seq[i] = residue.Upper(p.seq[i])
	}
}

// Stream yields records from a Source and can be restarted from the first
// record when the source allows it.
type Stream struct {
	src         Source
	maxResidues int

	rc     io.ReadCloser
	sc     *bufio.Scanner
	opened bool
	done   bool
	n      int

	cur  pending
	bufs [2][]byte
	slot int
}

// NewStream returns a stream over src. Nothing is read until the first
// Restart or Next.
func NewStream(src Source, opts ...Option) *Stream {
	s := &Stream{src: src}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Source returns the underlying source.
func (s *Stream) Source() Source { return s.src }

// Restart positions the stream before the first record. The first call
// opens the source; later calls fail with ErrUnseekableSource unless the
// source is rewindable.
func (s *Stream) Restart(ctx context.Context) error {
	if s.opened && !s.src.Rewindable() {
		return fmt.Errorf("fasta: %s: %w", s.src.Name(), ErrUnseekableSource)
	}
	if err := s.closeReader(); err != nil {
		return err
	}
	rc, err := s.src.Open(ctx)
	if err != nil {
		return fmt.Errorf("fasta: open %s: %w", s.src.Name(), err)
	}
	r, err := maybeGunzip(rc)
	if err != nil {
		_ = rc.Close()
		return fmt.Errorf("fasta: open %s: %w", s.src.Name(), err)
	}

	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	s.rc, s.sc = rc, sc
	s.opened, s.done, s.n = true, false, 0
	s.cur = pending{}
	return nil
}

// Next returns the next record, or io.EOF when the source is exhausted.
func (s *Stream) Next() (Record, error) {
	if !s.opened {
		if err := s.Restart(context.Background()); err != nil {
			return Record{}, err
		}
	}
	if s.done {
		return Record{}, io.EOF
	}
	for s.sc.Scan() {
		line := bytes.TrimRight(s.sc.Bytes(), " \t\r\n")
		if len(line) > 0 && line[0] == '>' {
			if s.cur.open {
				rec := s.emit()
				s.cur.start(line[1:], s.rotate())
				return rec, nil
			}
			s.cur.start(line[1:], s.rotate())
			continue
		}
		if !s.cur.open {
			continue // preamble before the first header
		}
		s.cur.add(line, s.maxResidues)
	}
	if err := s.sc.Err(); err != nil {
		s.done = true
		return Record{}, fmt.Errorf("fasta: read %s: %w", s.src.Name(), err)
	}
	s.done = true
	if s.cur.open {
		return s.emit(), nil
	}
	return Record{}, io.EOF
}

// Close releases the underlying reader.
func (s *Stream) Close() error { return s.closeReader() }

func (s *Stream) emit() Record {
	rec := Record{
		Index:   s.n,
		ID:      headerID(s.cur.label),
		Label:   s.cur.label,
		Seq:     s.cur.seq,
		Clipped: s.cur.clipped,
	}
	s.n++
	s.cur.open = false
	return rec
}

// rotate keeps the (possibly grown) accumulation buffer and switches to
// the other one, so the Seq of the record just returned survives until the
// caller's next Next call.
func (s *Stream) rotate() []byte {
	if s.cur.seq != nil {
		s.bufs[s.slot] = s.cur.seq
	}
	s.slot = 1 - s.slot
	return s.bufs[s.slot]
}

func (s *Stream) closeReader() error {
	if s.rc == nil {
		return nil
	}
	err := s.rc.Close()
	s.rc, s.sc = nil, nil
	return err
}

func maybeGunzip(rc io.Reader) (io.Reader, error) {
	br := bufio.NewReader(rc)
	sig, _ := br.Peek(2)
	if len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		return gzip.NewReader(br)
	}
	return br, nil
}

func headerID(label string) string {
	if i := strings.IndexAny(label, " \t"); i >= 0 {
		return label[:i]
	}
	return label
}
