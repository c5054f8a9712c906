package integration

import (
	"compress/gzip"
	"os"
	"testing"
)

func writeGzip(t *testing.T, fn, data string) {
	t.Helper()
	f, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}
