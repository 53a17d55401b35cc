package app

import (
	"bytes"
	"os"
	"testing"

	"github.com/op/go-logging"
)

// captureLogs routes go-logging output into a buffer for the current test.
func captureLogs(t *testing.T) (*logging.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	backend := logging.NewLogBackend(&buf, "", 0)
	logging.SetBackend(logging.NewBackendFormatter(backend, logging.MustStringFormatter(`%{message}`)))

	t.Cleanup(func() {
		logging.SetBackend(logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", 0), logging.MustStringFormatter(`%{message}`)))
	})

	return logging.MustGetLogger("app-test"), &buf
}
