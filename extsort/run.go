package extsort

import (
	"bufio"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/klauspost/compress/s2"
)

// runWriter spills one sorted run of elements to a temp file, optionally
// s2-compressed, named with a uuid so concurrent sorters never collide.
type runWriter[T any] struct {
	file  *os.File
	raw   io.Writer
	enc   *s2.Writer // non-nil iff compression is enabled
	bw    *bufio.Writer
	codec Codec[T]
}

func newRunWriter[T any](dir string, compress bool, codec Codec[T]) (*runWriter[T], error) {
	f, err := os.CreateTemp(dir, "oocgraph-run-"+uuid.NewString()+"-*.run")
	if err != nil {
		return nil, err
	}
	rw := &runWriter[T]{file: f, codec: codec}
	if compress {
		rw.enc = s2.NewWriter(f)
		rw.bw = bufio.NewWriter(rw.enc)
	} else {
		rw.bw = bufio.NewWriter(f)
	}
	return rw, nil
}

func (rw *runWriter[T]) write(v T) error {
	return rw.codec.Encode(rw.bw, v)
}

// close flushes all buffers and returns the run's file path; the caller
// owns deleting it once the run is no longer needed.
func (rw *runWriter[T]) close() (string, error) {
	if err := rw.bw.Flush(); err != nil {
		return "", err
	}
	if rw.enc != nil {
		if err := rw.enc.Close(); err != nil {
			return "", err
		}
	}
	path := rw.file.Name()
	if err := rw.file.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// runReader streams one spilled run back in encoding order.
type runReader[T any] struct {
	file  *os.File
	dec   *s2.Reader
	br    *bufio.Reader
	codec Codec[T]
	path  string
}

func openRunReader[T any](path string, compress bool, codec Codec[T]) (*runReader[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rr := &runReader[T]{file: f, codec: codec, path: path}
	if compress {
		rr.dec = s2.NewReader(f)
		rr.br = bufio.NewReader(rr.dec)
	} else {
		rr.br = bufio.NewReader(f)
	}
	return rr, nil
}

// next decodes the next element, returning io.EOF when the run is drained.
func (rr *runReader[T]) next() (T, error) {
	return rr.codec.Decode(rr.br)
}

func (rr *runReader[T]) rewind() error {
	if _, err := rr.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if rr.dec != nil {
		rr.dec.Reset(rr.file)
		rr.br = bufio.NewReader(rr.dec)
	} else {
		rr.br = bufio.NewReader(rr.file)
	}
	return nil
}

func (rr *runReader[T]) close() error {
	return rr.file.Close()
}

func (rr *runReader[T]) remove() error {
	return os.Remove(rr.path)
}
