package queue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestHandle_AppendsLine(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	c := NewChatConsumer("amqp://unused/", "chat.received", dir)

	body := `{"id":"0b1c","message":"hello","language":"hi","reply":"You said (hi): hello","received_at":"2025-09-10T08:00:00Z"}`
	for i := 0; i < 2; i++ {
		if err := c.Handle([]byte(body)); err != nil {
			t.Fatalf("handle failed: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
	}
	want := `[2025-09-10T08:00:00Z] Chat received | id=0b1c | language="hi" | message="hello" | reply="You said (hi): hello"`
	if lines[0] != want {
		t.Errorf("got line %q, want %q", lines[0], want)
	}
}

func TestHandle_RejectsBadPayload(t *testing.T) {
	c := NewChatConsumer("amqp://unused/", "chat.received", t.TempDir())

	for _, body := range []string{`not json`, `{"message":"no id"}`} {
		if err := c.Handle([]byte(body)); err == nil {
			t.Errorf("expected error for %q", body)
		}
	}
}

func TestFormatEvent_QuotesNewlines(t *testing.T) {
	line := FormatEvent(ChatReceivedEvent{ID: "x", Message: "a\nb"})
	if strings.Count(line, "\n") != 1 {
		t.Errorf("event must stay on one line: %q", line)
	}
}

func TestNextBackoff(t *testing.T) {
	d := time.Second
	var seen []time.Duration
	for i := 0; i < 7; i++ {
		d = nextBackoff(d)
		seen = append(seen, d)
	}
	want := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second, 30 * time.Second, 30 * time.Second, 30 * time.Second}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("backoff sequence %v, want %v", seen, want)
		}
	}
}
