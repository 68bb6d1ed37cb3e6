package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		SetLevel("info")
	})
	return &buf
}

func TestLogger_IncludesRequestID(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRequestID(context.Background(), "rid-1")
	NewLogger(ctx).Infof("tasks.create", "task_id=%s", "t-1")

	assert.Equal(t, "[info] request_id=rid-1 operation=tasks.create task_id=t-1\n", buf.String())
}

func TestLogger_RespectsLevel(t *testing.T) {
	buf := captureLog(t)
	SetLevel("error")

	l := NewLogger(context.Background())
	l.Infof("op", "dropped")
	l.Warnf("op", "dropped")
	l.Error("op", errors.New("kept"))

	assert.Equal(t, "[error] request_id=- operation=op error=kept\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}
