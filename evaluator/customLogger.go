package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

const logTimeFormat = "[2006/01/02 15:04:05]"

// lineHandler writes one line per record: "[time] [LEVEL] [values...] message".
// Attribute keys are dropped, only their values are printed, and the level
// tag is omitted for info records.
type lineHandler struct {
	out    io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	prefix []string
}

func newLineHandler(out io.Writer, level slog.Leveler) *lineHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &lineHandler{out: out, mu: &sync.Mutex{}, level: level}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := append([]string(nil), h.prefix...)
	for _, a := range attrs {
		prefix = appendAttrValue(prefix, a)
	}
	return &lineHandler{out: h.out, mu: h.mu, level: h.level, prefix: prefix}
}

// WithGroup is a no-op: group names would only qualify keys, which are not
// printed.
func (h *lineHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]string, 0, len(h.prefix)+r.NumAttrs()+3)
	fields = append(fields, r.Time.Format(logTimeFormat))
	if r.Level != slog.LevelInfo {
		fields = append(fields, "["+r.Level.String()+"]")
	}
	fields = append(fields, h.prefix...)
	r.Attrs(func(a slog.Attr) bool {
		fields = appendAttrValue(fields, a)
		return true
	})
	fields = append(fields, r.Message)
	line := strings.Join(fields, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line)
	return err
}

func appendAttrValue(fields []string, a slog.Attr) []string {
	if a.Equal(slog.Attr{}) {
		return fields
	}
	return append(fields, "["+a.Value.Resolve().String()+"]")
}

// Logger sends info messages and errors to different slog loggers, and is
// installed as the library logger.
type Logger struct {
	InfoLog  *slog.Logger
	ErrorLog *slog.Logger
}

func (l Logger) Info(message string, module string) {
	l.InfoLog.Info(message, "module", module)
}

func (l Logger) Error(message string) {
	l.ErrorLog.Error(message)
}
