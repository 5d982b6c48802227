package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ChunkSize is the read buffer size used for content passes
const ChunkSize = 1024

// ReadChunks opens path and calls fn with each chunk of at most size bytes
// until EOF. The file is closed on every exit path.
func ReadChunks(path string, size int, fn func([]byte) error) error {
	if size <= 0 {
		size = ChunkSize
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, size)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			if ferr := fn(buf[:n]); ferr != nil {
				return ferr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
	}
}

// ReadHead reads up to n bytes from the start of path
func ReadHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return buf[:read], nil
}
