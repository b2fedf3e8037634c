// Package logger: тонкая обёртка над log с уровнями и префиксом подсистемы.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger пишет info/warn в stdout, error в stderr.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New создаёт логгер с префиксом вида "[BPD-INFO] <name>: ".
func New(name string) *Logger {
	return NewWithWriters(name, os.Stdout, os.Stderr)
}

// NewWithWriters is New with explicit outputs.
func NewWithWriters(name string, out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.Lmsgprefix
	tag := ""
	if name != "" {
		tag = name + ": "
	}
	return &Logger{
		infoLogger:  log.New(out, "[BPD-INFO] "+tag, flags),
		warnLogger:  log.New(out, "[BPD-WARN] "+tag, flags),
		errorLogger: log.New(errOut, "[BPD-ERROR] "+tag, flags),
	}
}

// Discard возвращает логгер, который ничего не пишет. Для тестов.
func Discard() *Logger {
	return NewWithWriters("", io.Discard, io.Discard)
}

// Info logs informational messages.
func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Event пишет игровое событие одной строкой.
func (l *Logger) Event(eventType string, details string, args ...any) {
	l.infoLogger.Printf("[EVENT:%s] %s", eventType, fmt.Sprintf(details, args...))
}

// Fatal logs the message as an error and exits with status 1.
func (l *Logger) Fatal(format string, args ...any) {
	l.errorLogger.Fatalf(format, args...)
}
