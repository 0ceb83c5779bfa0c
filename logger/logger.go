// Package logger writes KEY:value lines. A Logger without a sink forwards
// to the data-structures error logger on stderr.
package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/timtadh/data-structures/errors"
)

type Logger struct {
	filename string
	mu       sync.Mutex
	out      io.Writer
	file     *os.File
	written  int64
	err      error
}

// New returns a Logger writing to out. A nil out logs to stderr.
func New(out io.Writer) *Logger {
	return &Logger{out: out}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}

// NewFile opens (or creates) filename in append mode and logs to it.
func NewFile(filename string) (*Logger, error) {
	logs := &Logger{}
	if err := logs.SetLogFileName(filename); err != nil {
		return nil, err
	}
	return logs, nil
}

// FromConfig reads the name of the log file from the first line of the
// config file at path and opens it.
func FromConfig(path string) (*Logger, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, errors.Errorf("logger: config %q is empty", path)
	}
	name := strings.TrimSpace(scanner.Text())
	if name == "" {
		return nil, errors.Errorf("logger: config %q names no log file", path)
	}
	return NewFile(name)
}

func (logs *Logger) SetLogFileName(filename string) error {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return err
	}
	logs.mu.Lock()
	defer logs.mu.Unlock()
	if logs.file != nil {
		logs.file.Close()
	}
	logs.filename = filename
	logs.file = file
	logs.out = file
	return nil
}

func (logs *Logger) GetLogFileName() string {
	return logs.filename
}

// Log writes "key:value". It returns the number of bytes this logger has
// written so far. Safe to call on a nil Logger.
func (logs *Logger) Log(key, value string) int64 {
	if logs == nil {
		return 0
	}
	logs.mu.Lock()
	defer logs.mu.Unlock()
	if logs.out == nil {
		errors.Logf(key, "%s", value)
		return logs.written
	}
	n, err := io.WriteString(logs.out, key+":"+value+"\n")
	logs.written += int64(n)
	if err != nil && logs.err == nil {
		logs.err = err
	}
	return logs.written
}

// Err returns the first error a write to the sink failed with.
func (logs *Logger) Err() error {
	if logs == nil {
		return nil
	}
	logs.mu.Lock()
	defer logs.mu.Unlock()
	return logs.err
}

func (logs *Logger) Logf(key, format string, args ...interface{}) int64 {
	if logs == nil {
		return 0
	}
	return logs.Log(key, fmt.Sprintf(format, args...))
}

// Close closes the log file, if any.
func (logs *Logger) Close() error {
	if logs == nil {
		return nil
	}
	logs.mu.Lock()
	defer logs.mu.Unlock()
	if logs.file == nil {
		return nil
	}
	err := logs.file.Close()
	logs.file = nil
	logs.out = nil
	return err
}
