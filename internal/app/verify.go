package app

import (
	"bytes"
	"fmt"

	"github.com/codingsince1985/checksum"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/spf13/afero"
)

// verifyContent re-reads path through a fresh handle and compares it
// byte-for-byte against want. On mismatch it returns a unified diff alongside
// an ErrVerify-wrapped error.
func verifyContent(fs afero.Fs, path string, want []byte) (string, error) {
	got, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", err
	}

	wantSum, err := checksum.SHA256sumReader(bytes.NewReader(want))
	if err != nil {
		return "", err
	}

	gotSum, err := checksum.SHA256sumReader(bytes.NewReader(got))
	if err != nil {
		return "", err
	}

	if wantSum == gotSum {
		return "", nil
	}

	edits := myers.ComputeEdits(span.URIFromPath(path), string(want), string(got))
	diff := fmt.Sprint(gotextdiff.ToUnified("written", "read back", string(want), edits))

	return diff, fmt.Errorf("%w: %s", ErrVerify, path)
}
