package observability

import (
	"fmt"
	"io"
	"sync"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field    { return stringField{key, value} }
func Int(key string, value int) Field   { return intField{key, value} }
func Error(key string, err error) Field { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// TextLogger writes one line per event to an io.Writer. It is what the
// CLI installs for verbose runs; library code only sees the Logger
// interface.
type TextLogger struct {
	mu     *sync.Mutex
	w      io.Writer
	fields []Field
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{mu: &sync.Mutex{}, w: w}
}

func (l *TextLogger) Debug(msg string, fields ...Field) { l.log("DEBUG", msg, fields) }
func (l *TextLogger) Info(msg string, fields ...Field)  { l.log("INFO", msg, fields) }
func (l *TextLogger) Warn(msg string, fields ...Field)  { l.log("WARN", msg, fields) }
func (l *TextLogger) Error(msg string, fields ...Field) { l.log("ERROR", msg, fields) }

func (l *TextLogger) With(fields ...Field) Logger {
	child := &TextLogger{mu: l.mu, w: l.w}
	child.fields = append(append([]Field{}, l.fields...), fields...)
	return child
}

func (l *TextLogger) log(level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s", level, msg)
	for _, f := range l.fields {
		fmt.Fprintf(l.w, " %s=%v", f.Key(), f.Value())
	}
	for _, f := range fields {
		fmt.Fprintf(l.w, " %s=%v", f.Key(), f.Value())
	}
	fmt.Fprintln(l.w)
}
