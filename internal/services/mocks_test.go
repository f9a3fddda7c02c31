package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vvka-141/scrub/pkg/scrub"
)

type mockApprover struct {
	approved bool
	err      error
	calls    int
	seen     scrub.HeaderDetection
}

func (m *mockApprover) ApproveHeader(_ context.Context, d scrub.HeaderDetection) (bool, error) {
	m.calls++
	m.seen = d
	return m.approved, m.err
}

// recordingLogger captures every message for assertions.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, level+" "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.record("VERBOSE", format, args...)
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.record("INFO", format, args...)
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.record("ERROR", format, args...)
}

func (l *recordingLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.messages, "\n")
}
