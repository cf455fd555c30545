package logging

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/formsmith/internal/ports"
)

const defaultBufferLimit = 1000

type bufferedEntry struct {
	ctx    context.Context
	level  zerolog.Level
	msg    string
	fields []interface{}
}

// Buffer holds log entries while the terminal is owned by the interactive
// editor. Once full, the oldest entries are dropped.
type Buffer struct {
	mu      sync.Mutex
	limit   int
	entries []bufferedEntry
}

// NewBuffer creates a buffer holding at most limit entries (1000 when limit
// is not positive).
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &Buffer{limit: limit, entries: make([]bufferedEntry, 0, 16)}
}

// Len returns the number of held entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Logger returns a ports.Logger writing into b.
func (b *Buffer) Logger() ports.Logger {
	return &bufferedLogger{buffer: b}
}

// Flush replays held entries on delegate in order and empties the buffer.
func (b *Buffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	entries := b.entries
	b.entries = make([]bufferedEntry, 0, 16)
	b.mu.Unlock()

	for _, entry := range entries {
		switch entry.level {
		case zerolog.DebugLevel:
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case zerolog.WarnLevel:
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case zerolog.ErrorLevel:
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
}

func (b *Buffer) add(entry bufferedEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == b.limit {
		b.entries = append(b.entries[:0], b.entries[1:]...)
	}
	b.entries = append(b.entries, entry)
}

type bufferedLogger struct {
	buffer *Buffer
	fields []interface{}
}

func (l *bufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.DebugLevel, msg, fields)
}

func (l *bufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.InfoLevel, msg, fields)
}

func (l *bufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.WarnLevel, msg, fields)
}

func (l *bufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.ErrorLevel, msg, fields)
}

func (l *bufferedLogger) With(fields ...interface{}) ports.Logger {
	next := append(append([]interface{}{}, l.fields...), fields...)
	return &bufferedLogger{buffer: l.buffer, fields: next}
}

func (l *bufferedLogger) log(ctx context.Context, level zerolog.Level, msg string, fields []interface{}) {
	if l.buffer == nil {
		return
	}
	l.buffer.add(bufferedEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	})
}
