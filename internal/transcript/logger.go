// Package transcript writes the durable, append-only record of every
// completed turn. One pipe-delimited UTF-8 line per turn, no header, no
// rotation; the file is created on first write.
package transcript

import (
	"fmt"
	"os"
	"sync"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Logger appends turn records to a flat text file. The mutex serializes the
// single process's writers; multi-process deployments need their own file.
type Logger struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// New returns a Logger writing to path with the wall clock.
func New(path string) *Logger {
	return NewWithClock(path, time.Now)
}

// NewWithClock allows tests to freeze the timestamp source.
func NewWithClock(path string, now func() time.Time) *Logger {
	return &Logger{path: path, now: now}
}

// Path returns the transcript file location.
func (l *Logger) Path() string {
	return l.path
}

// LogTurn appends one line for a completed turn, failed turns included.
func (l *Logger) LogTurn(userText, botText string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("%s | USER: %s | BOT: %s\n", l.now().Format(timeLayout), userText, botText)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open transcript %s: %w", l.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append transcript line: %w", err)
	}
	return nil
}
