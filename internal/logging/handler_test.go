package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h)

	now := time.Now()
	logger.Info("validating agent config", "path", ".github/agents/backend.yaml")

	output := buf.String()
	if !strings.Contains(output, "INFO") {
		t.Errorf("expected level INFO in output, got: %q", output)
	}
	if !strings.Contains(output, "validating agent config") {
		t.Errorf("expected message in output, got: %q", output)
	}
	if !strings.Contains(output, "path=.github/agents/backend.yaml") {
		t.Errorf("expected attribute in output, got: %q", output)
	}
	if !strings.Contains(output, now.Format(time.Kitchen)) {
		t.Errorf("expected kitchen time in output, got: %q", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Errorf("expected trailing newline, got: %q", output)
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("file", "a.yaml")

	logger.Info("message", "errors", 2)

	output := buf.String()
	if !strings.Contains(output, "file=a.yaml") {
		t.Errorf("expected common attribute in output, got: %q", output)
	}
	if !strings.Contains(output, "errors=2") {
		t.Errorf("expected local attribute in output, got: %q", output)
	}
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("report")

	logger.Info("summary", "errors", 1, slog.Group("files", "total", 3))

	output := buf.String()
	if !strings.Contains(output, "report.errors=1") {
		t.Errorf("expected grouped key, got: %q", output)
	}
	if !strings.Contains(output, "report.files.total=3") {
		t.Errorf("expected nested group key, got: %q", output)
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := t.Context()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info level to be disabled when min level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("expected Warn level to be enabled")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
}

func TestHandler_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(context.Background(), LevelTrace, "checking field", "field", "skills")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE level name, got: %q", buf.String())
	}
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	if err := h.Handle(t.Context(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "INFO") {
		t.Errorf("expected output to start with level, got: %q", buf.String())
	}
}

func TestSupportsColor(t *testing.T) {
	t.Run("buffer is never a tty", func(t *testing.T) {
		if SupportsColor(&bytes.Buffer{}) {
			t.Error("bytes.Buffer should not support color")
		}
	})

	t.Run("NO_COLOR disables color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		if supportsColor(true) {
			t.Error("NO_COLOR should disable color")
		}
	})

	t.Run("dumb terminal disables color", func(t *testing.T) {
		os.Unsetenv("NO_COLOR")
		t.Setenv("TERM", "dumb")
		if supportsColor(true) {
			t.Error("TERM=dumb should disable color")
		}
	})
}

type failingHandler struct {
	slog.Handler
	err error
}

func (f failingHandler) Handle(context.Context, slog.Record) error { return f.err }

func TestMultiHandler(t *testing.T) {
	var text, jsonBuf bytes.Buffer
	m := NewMultiHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&jsonBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(m).With("run", "ci")

	logger.Debug("discovered files", "count", 2)
	logger.Warn("unusual role", "role", "Unusual Title")

	if strings.Contains(text.String(), "discovered files") {
		t.Errorf("text handler should filter debug, got: %q", text.String())
	}
	if !strings.Contains(text.String(), "run=ci") {
		t.Errorf("text handler missing shared attr, got: %q", text.String())
	}
	if got := strings.Count(jsonBuf.String(), "\n"); got != 2 {
		t.Errorf("json handler lines = %d, want 2", got)
	}

	wantErr := errors.New("write failed")
	failing := NewMultiHandler(failingHandler{Handler: slog.NewTextHandler(&bytes.Buffer{}, nil), err: wantErr})
	if err := failing.Handle(t.Context(), slog.NewRecord(time.Now(), slog.LevelInfo, "x", 0)); !errors.Is(err, wantErr) {
		t.Errorf("Handle() error = %v, want %v", err, wantErr)
	}
}
