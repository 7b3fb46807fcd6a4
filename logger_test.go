package isologo_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/animate"
	"github.com/gogpu/isologo/config"
)

type record struct {
	level slog.Level
	msg   string
	attrs map[string]slog.Value
}

// captureHandler keeps every record it is handed. Watch logs from its own
// goroutine, so access is locked.
type captureHandler struct {
	mu      sync.Mutex
	records []record
}

func (*captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	rec := record{level: r.Level, msg: r.Message, attrs: map[string]slog.Value{}}
	r.Attrs(func(a slog.Attr) bool {
		rec.attrs[a.Key] = a.Value
		return true
	})
	h.mu.Lock()
	h.records = append(h.records, rec)
	h.mu.Unlock()
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func (h *captureHandler) find(msg string) (record, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if r.msg == msg {
			return r, true
		}
	}
	return record{}, false
}

func capture(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	isologo.SetLogger(slog.New(h))
	t.Cleanup(func() { isologo.SetLogger(nil) })
	return h
}

func TestLoggerDefaultSilent(t *testing.T) {
	isologo.SetLogger(slog.Default())
	isologo.SetLogger(nil)

	l := isologo.Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestAnimatorLogsIdle(t *testing.T) {
	h := capture(t)
	s := animate.NewManualScheduler(time.Unix(0, 0))
	a := animate.New(animate.WithScheduler(s))
	a.Timeline().Call(func() {})

	a.Start()
	s.Advance(16 * time.Millisecond)
	if a.IsRunning() {
		t.Fatal("animator should be idle after its only barrier")
	}

	r, ok := h.find("animate: idle")
	if !ok {
		t.Fatalf("no idle record in %+v", h.records)
	}
	if r.level != slog.LevelDebug {
		t.Errorf("idle level = %v, want debug", r.level)
	}
	if got := r.attrs["frames"].Uint64(); got != 1 {
		t.Errorf("idle frames = %d, want 1", got)
	}
	if got := r.attrs["elapsed"].Duration(); got != 16*time.Millisecond {
		t.Errorf("idle elapsed = %v, want 16ms", got)
	}
	if _, ok := h.find("animate: stopped"); ok {
		t.Error("going idle is not a Stop")
	}
}

func TestAnimatorLogsStopped(t *testing.T) {
	h := capture(t)
	s := animate.NewManualScheduler(time.Unix(0, 0))
	a := animate.New(animate.WithScheduler(s))
	a.Ticker(func() {})

	a.Start()
	s.Advance(time.Millisecond)
	s.Advance(time.Millisecond)
	a.Stop()
	a.Stop()

	h.mu.Lock()
	n := 0
	for _, r := range h.records {
		if r.msg == "animate: stopped" {
			n++
		}
	}
	h.mu.Unlock()
	if n != 1 {
		t.Fatalf("stopped records = %d, want 1 (second Stop is a no-op)", n)
	}
	r, _ := h.find("animate: stopped")
	if r.level != slog.LevelDebug {
		t.Errorf("stopped level = %v, want debug", r.level)
	}
	if got := r.attrs["frames"].Uint64(); got != 2 {
		t.Errorf("stopped frames = %d, want 2", got)
	}
}

func TestConfigReloadRejectedWarns(t *testing.T) {
	h := capture(t)
	path := filepath.Join(t.TempDir(), "logo.toml")
	if err := os.WriteFile(path, []byte("fps = 30"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rejected := make(chan error, 1)
	done := make(chan error, 1)
	go func() {
		done <- config.Watch(ctx, path, func(_ *config.Config, err error) {
			if err == nil {
				return
			}
			select {
			case rejected <- err:
			default:
			}
		})
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
wait:
	for {
		select {
		case <-rejected:
			break wait
		case <-tick.C:
			if err := os.WriteFile(path, []byte("fps = -1"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no rejected reload observed")
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch: %v", err)
	}

	r, ok := h.find("config: reload rejected")
	if !ok {
		t.Fatal("no reload rejected record")
	}
	if r.level != slog.LevelWarn {
		t.Errorf("level = %v, want warn", r.level)
	}
	abs, _ := filepath.Abs(path)
	if got := r.attrs["path"].String(); got != abs {
		t.Errorf("path = %q, want %q", got, abs)
	}
	if _, ok := r.attrs["err"]; !ok {
		t.Error("record carries no err attribute")
	}
	if _, ok := h.find("config: watching"); !ok {
		t.Error("no watching record")
	}
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	// The animator logs per frame; disabled logging must stay cheap.
	l := isologo.Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
