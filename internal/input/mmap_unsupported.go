//go:build !linux && !darwin

package input

import (
	"io"
	"os"
)

// On unsupported platforms the file is read into memory instead.
func mapFile(file *os.File, size int) ([]byte, func() error, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, nil, err
	}
	return data, nil, nil
}
