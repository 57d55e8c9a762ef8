package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// shortSessionLen is how much of a session ID the console header shows.
const shortSessionLen = 8

// consoleHandler writes one line per record:
//
//	2026-01-02 15:04:05 INFO session[1a2b3c4d]: show added title="The Bear" count=3
//
// The component and session ID are lifted into the header; every other
// attribute follows the message as key=value.
type consoleHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	level     slog.Level
	addSource bool

	component string
	session   string
	prefix    string
	pairs     []string
}

func newConsoleHandler(w io.Writer, level slog.Level, addSource bool) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, level: level, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	line := h.clone()
	record.Attrs(func(attr slog.Attr) bool {
		line.add(attr)
		return true
	})

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var buf bytes.Buffer
	buf.WriteString(ts.Format(time.DateTime))
	buf.WriteByte(' ')
	buf.WriteString(record.Level.String())
	buf.WriteByte(' ')
	if line.component != "" || line.session != "" {
		buf.WriteString(line.component)
		if line.session != "" {
			buf.WriteString("[" + line.session + "]")
		}
		buf.WriteString(": ")
	}
	buf.WriteString(record.Message)
	if h.addSource && record.PC != 0 {
		if src := record.Source(); src != nil {
			fmt.Fprintf(&buf, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	for _, pair := range line.pairs {
		buf.WriteByte(' ')
		buf.WriteString(pair)
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	for _, attr := range attrs {
		clone.add(attr)
	}
	return clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.prefix += name + "."
	return clone
}

func (h *consoleHandler) clone() *consoleHandler {
	clone := *h
	clone.pairs = append([]string(nil), h.pairs...)
	return &clone
}

func (h *consoleHandler) add(attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if h.prefix == "" {
		switch attr.Key {
		case FieldComponent:
			h.component = attr.Value.String()
			return
		case FieldSessionID:
			h.session = shortSession(attr.Value.String())
			return
		}
	}
	h.pairs = appendPairs(h.pairs, h.prefix, attr)
}

func appendPairs(dst []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			dst = appendPairs(dst, inner, member)
		}
		return dst
	}
	return append(dst, prefix+attr.Key+"="+formatValue(attr.Value))
}

func shortSession(id string) string {
	if len(id) > shortSessionLen {
		return id[:shortSessionLen]
	}
	return id
}

func formatValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindFloat64:
		s = strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindTime:
		s = v.Time().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	return s == "" || strings.ContainsFunc(s, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"'
	})
}
