package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irepeats/internal/fasta"
	"irepeats/internal/pattern"
)

const twoRecords = ">r1\nAXAXA\n>r2\nAAAA\n"

func memStream(data string) *fasta.Stream {
	return fasta.NewStream(fasta.NewReaderSource("mem", bytes.NewReader([]byte(data))))
}

func patterns(t *testing.T, texts ...string) []pattern.Pattern {
	t.Helper()
	var out []pattern.Pattern
	for _, s := range texts {
		p, err := pattern.Parse(s)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func run(t *testing.T, cfg Config, s RecordStream, ps []pattern.Pattern) ([]Event, error) {
	t.Helper()
	var evs []Event
	err := ForEachPattern(context.Background(), cfg, s, ps, func(e Event) error {
		evs = append(evs, e)
		return nil
	})
	return evs, err
}

func tallies(evs []Event) []Tally {
	var out []Tally
	for _, e := range evs {
		if e.Kind == PatternFinished {
			out = append(out, e.Tally)
		}
	}
	return out
}

func TestEndToEndScenarios(t *testing.T) {
	evs, err := run(t, Config{Exact: true, Verbose: true}, memStream(twoRecords), patterns(t, "AXA", "AXAXA"))
	require.NoError(t, err)

	ts := tallies(evs)
	require.Len(t, ts, 2)
	assert.Equal(t, 0, ts[0].Matches)
	assert.Equal(t, 0, ts[0].RecordsMatched)
	assert.Equal(t, 2, ts[0].RecordsScanned)
	assert.Equal(t, 1, ts[1].Matches)
	assert.Equal(t, 1, ts[1].RecordsMatched)

	var matched []Event
	for _, e := range evs {
		if e.Kind == RecordMatched {
			matched = append(matched, e)
		}
	}
	require.Len(t, matched, 1)
	assert.Equal(t, "r1", matched[0].Label)
	assert.Equal(t, 0, matched[0].RecordIndex)
	assert.Equal(t, []int{0}, matched[0].Offsets)
	assert.Equal(t, "AXAXA", matched[0].Pattern.String())
}

func TestEventOrder(t *testing.T) {
	evs, err := run(t, Config{Exact: true, Verbose: true}, memStream(twoRecords), patterns(t, "AXAXA", "CXC"))
	require.NoError(t, err)
	var kinds []EventKind
	for _, e := range evs {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []EventKind{PatternStarted, RecordMatched, PatternFinished, PatternStarted, PatternFinished}, kinds)
}

func TestNonExactCountsRawMatches(t *testing.T) {
	evs, err := run(t, Config{Exact: false}, memStream(twoRecords), patterns(t, "AXA"))
	require.NoError(t, err)
	ts := tallies(evs)
	require.Len(t, ts, 1)
	assert.Equal(t, 2, ts[0].Matches)
	assert.Equal(t, 1, ts[0].RecordsMatched)
}

func TestRestartIsIdempotent(t *testing.T) {
	s := memStream(">a\nGAGAGKGKGKG\n>b\nKLKLK\n>c\n\n>d\nLALAL\n")
	ps, err := pattern.Enumerate(1, 4)
	require.NoError(t, err)

	first, err := run(t, Config{Exact: true}, s, ps)
	require.NoError(t, err)
	second, err := run(t, Config{Exact: true}, s, ps)
	require.NoError(t, err)
	assert.Equal(t, tallies(first), tallies(second))
}

func TestNonVerboseSkipsRecordEvents(t *testing.T) {
	evs, err := run(t, Config{Exact: true}, memStream(twoRecords), patterns(t, "AXAXA"))
	require.NoError(t, err)
	for _, e := range evs {
		assert.NotEqual(t, RecordMatched, e.Kind)
	}
}

func TestProgress(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 7; i++ {
		b.WriteString(">r\nKAK\n")
	}
	var calls []int
	cfg := Config{Exact: true, ProgressEvery: 3, Progress: func(_ pattern.Pattern, n int) { calls = append(calls, n) }}
	evs, err := run(t, cfg, memStream(b.String()), patterns(t, "KXK", "AXA"))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 3, 6}, calls)
	assert.Equal(t, 7, tallies(evs)[0].Matches)
}

// fakeStream serves canned records and fails after them when err is set.
type fakeStream struct {
	recs     []fasta.Record
	err      error
	i        int
	restarts int
}

func (f *fakeStream) Restart(context.Context) error { f.i = 0; f.restarts++; return nil }

func (f *fakeStream) Next() (fasta.Record, error) {
	if f.i < len(f.recs) {
		f.i++
		return f.recs[f.i-1], nil
	}
	if f.err != nil {
		return fasta.Record{}, f.err
	}
	return fasta.Record{}, io.EOF
}

func TestReadErrorReportsPartialTally(t *testing.T) {
	boom := errors.New("boom")
	fs := &fakeStream{recs: []fasta.Record{{Label: "a", Seq: []byte("KAKAK")}}, err: boom}
	evs, err := run(t, Config{Exact: true}, fs, patterns(t, "KXKXK", "AXA"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	ts := tallies(evs)
	require.Len(t, ts, 1, "second pattern must not run")
	assert.True(t, ts[0].Partial)
	assert.Equal(t, 1, ts[0].Matches)
	assert.Equal(t, 1, ts[0].RecordsScanned)
}

func TestVisitErrorAborts(t *testing.T) {
	stop := errors.New("stop")
	fs := &fakeStream{}
	err := ForEachPattern(context.Background(), Config{}, fs, patterns(t, "AXA", "CXC"), func(Event) error { return stop })
	assert.True(t, errors.Is(err, stop))
	assert.Equal(t, 1, fs.restarts)
}

func TestCancelBetweenPatterns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fs := &fakeStream{}
	n := 0
	err := ForEachPattern(ctx, Config{}, fs, patterns(t, "AXA", "CXC", "DXD"), func(e Event) error {
		if e.Kind == PatternFinished {
			n++
			cancel()
		}
		return nil
	})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, n)
}

func TestCheckRewind(t *testing.T) {
	seekable := fasta.NewReaderSource("mem", bytes.NewReader(nil))
	assert.NoError(t, CheckRewind(seekable, 200))

	oneShot := fasta.NewReaderSource("pipe", io.MultiReader(strings.NewReader("")))
	assert.NoError(t, CheckRewind(oneShot, 1))
	assert.True(t, errors.Is(CheckRewind(oneShot, 2), fasta.ErrUnseekableSource))
}
