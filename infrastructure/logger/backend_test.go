package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type testWriteCloser struct {
	sync.Mutex
	bytes.Buffer
	closed bool
}

func (w *testWriteCloser) Write(p []byte) (int, error) {
	w.Lock()
	defer w.Unlock()
	return w.Buffer.Write(p)
}

func (w *testWriteCloser) Close() error {
	w.Lock()
	defer w.Unlock()
	w.closed = true
	return nil
}

func TestBackendWriterLevels(t *testing.T) {
	backend := NewBackendWithFlags(0)
	everything := &testWriteCloser{}
	errorsOnly := &testWriteCloser{}
	if err := backend.AddLogWriter(everything, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	if err := backend.AddLogWriter(errorsOnly, LevelError); err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}

	log := backend.Logger("TEST")
	log.Infof("dropped before the backend runs")

	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %s", err)
	}
	if err := backend.Run(); err == nil {
		t.Fatalf("TestBackendWriterLevels: a backend ran twice")
	}
	if err := backend.AddLogWriter(&testWriteCloser{}, LevelInfo); err == nil {
		t.Fatalf("TestBackendWriterLevels: a writer was added to a running backend")
	}

	log.Infof("not logged while the logger is off")
	log.SetLevel(LevelDebug)
	log.Tracef("below the logger's level")
	log.Infof("block %d accepted", 7)
	log.Errorf("block %d rejected", 8)

	backend.Close()
	backend.Close()

	if !everything.closed || !errorsOnly.closed {
		t.Fatalf("TestBackendWriterLevels: writers weren't closed")
	}

	everythingLines := strings.Split(strings.TrimSpace(everything.String()), "\n")
	if len(everythingLines) != 2 {
		t.Fatalf("TestBackendWriterLevels: expected 2 lines, got:\n%s", everything.String())
	}
	if !strings.HasSuffix(everythingLines[0], "[INF] TEST: block 7 accepted") {
		t.Fatalf("TestBackendWriterLevels: unexpected line %q", everythingLines[0])
	}
	if !strings.HasSuffix(strings.TrimSpace(errorsOnly.String()), "[ERR] TEST: block 8 rejected") {
		t.Fatalf("TestBackendWriterLevels: unexpected error log %q", errorsOnly.String())
	}
}
