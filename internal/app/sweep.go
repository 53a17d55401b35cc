package app

import (
	"path/filepath"

	"github.com/op/go-logging"
	"github.com/shini4i/temp-demo/internal/ports"
	"github.com/spf13/afero"
)

const artifactGlob = "temp-demo-*"

// Sweeper removes demonstration artifacts left behind by interrupted runs or
// runs executed with cleanup disabled.
type Sweeper struct {
	FS          afero.Fs
	Globber     ports.Globber
	Log         *logging.Logger
	TempDirBase string
}

// Sweep deletes every matching artifact under the temp base and returns how
// many entries were removed.
func (s Sweeper) Sweep() (int, error) {
	matches, err := s.Globber.Glob(filepath.Join(s.TempDirBase, artifactGlob))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, match := range matches {
		if err := (afero.Afero{Fs: s.FS}).RemoveAll(match); err != nil {
			return removed, err
		}
		s.Log.Debugf("removed leftover artifact: %s", match)
		removed++
	}

	return removed, nil
}
