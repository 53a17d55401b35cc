package app

import (
	"errors"

	"github.com/spf13/afero"
)

// failingReadFs delegates to the wrapped filesystem but refuses to open files
// for reading, exercising error paths after a successful write phase.
type failingReadFs struct {
	afero.Fs
}

func (f failingReadFs) Open(name string) (afero.File, error) {
	return nil, errors.New("open failed")
}

// aferoFileReader adapts an afero filesystem to the FileReader port for tests
// running against an in-memory filesystem.
type aferoFileReader struct {
	fs afero.Fs
}

func (r aferoFileReader) ReadFile(file string) []byte {
	content, err := afero.ReadFile(r.fs, file)
	if err != nil {
		return nil
	}
	return content
}
