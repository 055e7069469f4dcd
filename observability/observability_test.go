package observability

import (
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	var log Logger = NopLogger{}
	log.Debug("ignored", String("k", "v"))
	if _, ok := log.With(Int("n", 1)).(NopLogger); !ok {
		t.Fatalf("With on NopLogger should stay a NopLogger")
	}
}

func TestTextLoggerFields(t *testing.T) {
	var buf strings.Builder
	log := NewTextLogger(&buf)
	log.With(String("mode", "embed")).Info("done", Int("bits", 48))

	line := buf.String()
	for _, want := range []string{"INFO", "done", "mode=embed", "bits=48"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}

func TestTextLoggerWithDoesNotMutateParent(t *testing.T) {
	var buf strings.Builder
	log := NewTextLogger(&buf)
	log.With(String("child", "yes"))
	log.Info("parent")
	if strings.Contains(buf.String(), "child=yes") {
		t.Fatalf("parent logger picked up child fields: %q", buf.String())
	}
}
