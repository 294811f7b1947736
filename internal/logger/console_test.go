package logger

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "warn")

	log.Trace("trace message")
	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	if strings.Contains(out, "trace message") || strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below warn leaked through:\n%s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("warn/error messages missing:\n%s", out)
	}
}

func TestDefaultLevelIsInfo(t *testing.T) {
	for _, level := range []string{"", "bogus", "INFO", " info "} {
		var buf bytes.Buffer
		log := NewConsoleLogger(&buf, level)

		log.Debug("hidden")
		log.Info("shown")

		if strings.Contains(buf.String(), "hidden") {
			t.Errorf("level %q: debug leaked through", level)
		}
		if !strings.Contains(buf.String(), "shown") {
			t.Errorf("level %q: info filtered out", level)
		}
	}
}

func TestOutputFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "info")

	log.Info("solved %d blocks", 3)

	// Non-terminal writer: no color codes, plain [HH:MM:SS] LEVEL message.
	line := buf.String()
	matched, err := regexp.MatchString(`^\[\d{2}:\d{2}:\d{2}\] INFO solved 3 blocks\n$`, line)
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Errorf("unexpected log line: %q", line)
	}
}

func TestNilWriterDiscards(t *testing.T) {
	log := NewConsoleLogger(nil, "trace")

	// Must not panic.
	log.Info("dropped")
	log.Error("dropped")
}

func TestConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			log.Info("message %d", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Errorf("got %d lines, want 20", len(lines))
	}
}
