package transcript

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func frozenClock() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestLogTurnFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat_history.txt")
	logger := NewWithClock(path, frozenClock)

	if err := logger.LogTurn("I feel stuck.", "That sounds heavy. What feels most stuck right now?"); err != nil {
		t.Fatalf("LogTurn err: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}

	want := "2025-03-14 09:26:53 | USER: I feel stuck. | BOT: That sounds heavy. What feels most stuck right now?\n"
	if string(data) != want {
		t.Fatalf("transcript line mismatch:\ngot  %q\nwant %q", string(data), want)
	}
}

func TestLogTurnAppendsIdentically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat_history.txt")
	logger := NewWithClock(path, frozenClock)

	for i := 0; i < 3; i++ {
		if err := logger.LogTurn("hello", "hi"); err != nil {
			t.Fatalf("LogTurn err: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}

	line := "2025-03-14 09:26:53 | USER: hello | BOT: hi\n"
	if string(data) != line+line+line {
		t.Fatalf("expected three identical lines, got %q", string(data))
	}
}

func TestLogTurnCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.txt")
	logger := New(path)

	if err := logger.LogTurn("u", "b"); err != nil {
		t.Fatalf("LogTurn err: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("transcript file was not created: %v", err)
	}
}
