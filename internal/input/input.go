// Package input loads command files and splits them into protocol lines.
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source holds the full contents of a command file or stream.
type Source struct {
	data  []byte
	unmap func() error
}

// Open loads the file at path. On linux and darwin the file is memory-mapped
// read-only; elsewhere it is read into memory. Close releases the mapping.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}

	size := info.Size()
	if size == 0 {
		return &Source{}, nil
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("%s: file too large to map (%d bytes)", path, size)
	}

	data, unmap, err := mapFile(file, int(size))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Source{data: data, unmap: unmap}, nil
}

// Read loads everything from r, for commands piped on stdin.
func Read(r io.Reader) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Source{data: data}, nil
}

// Close releases the underlying mapping, if any. Lines already yielded stay
// valid.
func (s *Source) Close() error {
	unmap := s.unmap
	s.data = nil
	s.unmap = nil
	if unmap == nil {
		return nil
	}
	return unmap()
}

// Lines implements iter.Seq2[int, string], yielding each non-blank line with
// surrounding whitespace removed, together with its 1-based line number.
// Lines may end in "\n" or "\r\n".
func (s *Source) Lines(yield func(lineNo int, line string) bool) {
	data := s.data
	for lineNo := 1; len(data) > 0; lineNo++ {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}

		// string() copies out of the mapping.
		text := strings.TrimSpace(string(line))
		if text == "" {
			continue
		}
		if !yield(lineNo, text) {
			return
		}
	}
}
