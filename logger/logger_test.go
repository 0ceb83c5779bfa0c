package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesKeyValueLines(t *testing.T) {
	var buf bytes.Buffer
	logs := New(&buf)
	assert.Equal(t, int64(len("INFO:hello\n")), logs.Log("INFO", "hello"))
	logs.Logf("ROTATE", "left at %d", 7)
	assert.Equal(t, "INFO:hello\nROTATE:left at 7\n", buf.String())
}

func TestNilLoggerIsSilent(t *testing.T) {
	var logs *Logger
	assert.Equal(t, int64(0), logs.Log("INFO", "dropped"))
	assert.Equal(t, int64(0), logs.Logf("INFO", "%s", "dropped"))
	assert.NoError(t, logs.Close())
	assert.NoError(t, logs.Err())
}

type failingWriter struct {
	wrote int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.wrote += 2
	return 2, errors.New("disk full")
}

func TestWriteErrorsAreKept(t *testing.T) {
	w := &failingWriter{}
	logs := New(w)
	assert.Equal(t, int64(2), logs.Log("INFO", "first"))
	assert.Equal(t, int64(4), logs.Log("INFO", "second"))
	require.Error(t, logs.Err())
	assert.Equal(t, "disk full", logs.Err().Error())
	assert.Equal(t, 4, w.wrote)

	assert.NoError(t, New(&bytes.Buffer{}).Err())
}

func TestStderrFallback(t *testing.T) {
	logs := New(nil)
	assert.Equal(t, int64(0), logs.Log("INFO", "to stderr"))
	assert.Equal(t, int64(0), logs.Logf("DEBUG", "to stderr %d", 2))
	assert.NoError(t, logs.Err())
	assert.NoError(t, logs.Close())

	// A closed file logger falls back to stderr as well.
	file, err := NewFile(filepath.Join(t.TempDir(), "closed.log"))
	require.NoError(t, err)
	file.Log("INFO", "kept")
	require.NoError(t, file.Close())
	written := file.Log("INFO", "after close")
	assert.Equal(t, int64(len("INFO:kept\n")), written)
}

func TestDiscard(t *testing.T) {
	logs := Discard()
	assert.Equal(t, int64(4), logs.Log("A", "b"))
	require.NoError(t, logs.Close())
}

func TestFileLog(t *testing.T) {
	name := filepath.Join(t.TempDir(), "tree.log")
	logs, err := NewFile(name)
	require.NoError(t, err)
	assert.Equal(t, name, logs.GetLogFileName())
	logs.Log("FIXUP", "one")
	logs.Log("FIXUP", "two")
	require.NoError(t, logs.Close())

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "FIXUP:one\nFIXUP:two\n", string(data))

	// Reopening appends.
	logs, err = NewFile(name)
	require.NoError(t, err)
	logs.Log("FIXUP", "three")
	require.NoError(t, logs.Close())
	data, err = os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "FIXUP:one\nFIXUP:two\nFIXUP:three\n", string(data))
}

func TestFromConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "trace.log")
	config := filepath.Join(dir, "logger.conf")
	require.NoError(t, os.WriteFile(config, []byte(name+"\nignored\n"), 0644))

	logs, err := FromConfig(config)
	require.NoError(t, err)
	assert.Equal(t, name, logs.GetLogFileName())
	logs.Log("INFO", "configured")
	require.NoError(t, logs.Close())
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "INFO:configured\n", string(data))

	empty := filepath.Join(dir, "empty.conf")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = FromConfig(empty)
	assert.Error(t, err)

	_, err = FromConfig(filepath.Join(dir, "missing.conf"))
	assert.Error(t, err)
}
