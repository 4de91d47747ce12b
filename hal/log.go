package hal

import (
	"fmt"
	"io"
	"sync"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

type lineLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger that serializes whole-line writes to w.
func NewLogger(w io.Writer) Logger {
	return &lineLogger{w: w}
}

func (l *lineLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}
