package csvfile

import (
	"compress/gzip"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Compression is selected by file extension so a library file named
// library.csv.gz or library.csv.zst transparently compresses on save
// and decompresses on load.

func compressionFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return "gzip"
	case strings.HasSuffix(path, ".zst"):
		return "zstd"
	default:
		return "none"
	}
}

// newCompressionWriter wraps w according to the path's extension.
func newCompressionWriter(w io.Writer, path string) (io.WriteCloser, error) {
	switch compressionFor(path) {
	case "gzip":
		return gzip.NewWriter(w), nil
	case "zstd":
		return zstd.NewWriter(w)
	default:
		return &nopWriteCloser{w}, nil
	}
}

// newDecompressionReader wraps r according to the path's extension.
func newDecompressionReader(r io.Reader, path string) (io.ReadCloser, error) {
	switch compressionFor(path) {
	case "gzip":
		return gzip.NewReader(r)
	case "zstd":
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return decoder.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

// nopWriteCloser wraps a Writer to add a no-op Close method.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error {
	return nil
}
