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

	ctx := WithRequestID(context.Background(), "rid-42")
	assert.Equal(t, "rid-42", RequestID(ctx))

	New(ctx).LogError("synthesize_project", errors.New("boom"))
	assert.Equal(t, "[error] request_id=rid-42 operation=synthesize_project error=boom\n", buf.String())
}

func TestLogger_UnknownRequestID(t *testing.T) {
	buf := captureLog(t)

	New(context.Background()).LogInfof("lookup", "client_id=%s", "CLIENT-1")
	assert.Equal(t, "[info] request_id=unknown operation=lookup client_id=CLIENT-1\n", buf.String())
}

func TestLogger_DebugGatedByLevel(t *testing.T) {
	buf := captureLog(t)
	l := New(context.Background())

	l.LogDebugf("op", "hidden")
	assert.Empty(t, buf.String())

	SetLevel("debug")
	l.LogDebugf("op", "shown")
	assert.Contains(t, buf.String(), "[debug]")
}
