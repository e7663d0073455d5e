package logging

import (
	"context"
	"fmt"
	"sync"
)

type FakeLogRecord struct {
	Level   string
	Message string
	Entries []LogEntry
}

type FakeLogger struct {
	Logged []FakeLogRecord
	lock   sync.Mutex
}

func NewFakeLogger() *FakeLogger {
	return &FakeLogger{Logged: make([]FakeLogRecord, 0)}
}

func (l *FakeLogger) Debug(ctx context.Context, msg string, entries ...LogEntry) {
	l.append("debug", msg, entries)
}

func (l *FakeLogger) Info(ctx context.Context, msg string, entries ...LogEntry) {
	l.append("info", msg, entries)
}

func (l *FakeLogger) Warning(ctx context.Context, msg string, entries ...LogEntry) {
	l.append("warning", msg, entries)
}

func (l *FakeLogger) Error(ctx context.Context, msg string, entries ...LogEntry) {
	l.append("error", msg, entries)
}

// Dump returns every logged record rendered as text, for assertions on what
// must never be logged.
func (l *FakeLogger) Dump() string {
	l.lock.Lock()
	defer l.lock.Unlock()
	dump := ""
	for _, r := range l.Logged {
		dump += fmt.Sprintf("%s: %s %v\n", r.Level, r.Message, r.Entries)
	}
	return dump
}

func (l *FakeLogger) append(level string, msg string, entries []LogEntry) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.Logged = append(l.Logged, FakeLogRecord{Level: level, Message: msg, Entries: entries})
}
