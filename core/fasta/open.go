// core/fasta/open.go
package fasta

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path ("-" for stdin), transparently unwrapping gzip
// detected by magic number (1F 8B) or a .gz suffix. A non-nil enc decodes
// the byte stream into UTF-8 before scanning.
func openReader(path string, enc encoding.Encoding) (io.ReadCloser, error) {
	var rc io.ReadCloser
	if path == "-" {
		rc = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		var sig [2]byte
		n, _ := fh.Read(sig[:])
		_, _ = fh.Seek(0, io.SeekStart)
		if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
			gr, err := gzip.NewReader(fh)
			if err != nil {
				_ = fh.Close()
				return nil, err
			}
			rc = &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}
		} else {
			rc = fh
		}
	}
	if enc != nil {
		rc = &multiReadCloser{
			Reader:  transform.NewReader(rc, enc.NewDecoder()),
			closers: []io.Closer{rc},
		}
	}
	return rc, nil
}
