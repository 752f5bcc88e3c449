package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStubCLI(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "valkey-cli")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))

	return path
}

func newStubSubject(t *testing.T, script string) *valkeyCLIProbe {
	return &valkeyCLIProbe{
		command: writeStubCLI(t, script),
		timeout: probeTimeout,
	}
}

func TestValkeyCLIProbeIsHealthyOnPong(t *testing.T) {
	subject := newStubSubject(t, "echo PONG")

	outcome := subject.Exec(context.Background())

	assert.Equal(t, StatusHealthy, outcome.Status)
	assert.Empty(t, outcome.Fault)
}

func TestValkeyCLIProbeTrimsReplyWhitespace(t *testing.T) {
	subject := newStubSubject(t, `printf "  PONG \n"`)

	outcome := subject.Exec(context.Background())

	assert.Equal(t, StatusHealthy, outcome.Status)
}

func TestValkeyCLIProbeIsUnhealthyOnForeignReply(t *testing.T) {
	subject := newStubSubject(t, `echo "ERR timeout"`)

	outcome := subject.Exec(context.Background())

	assert.Equal(t, StatusUnhealthy, outcome.Status)
}

func TestValkeyCLIProbeIsUnhealthyOnLowercaseReply(t *testing.T) {
	subject := newStubSubject(t, "echo pong")

	outcome := subject.Exec(context.Background())

	assert.Equal(t, StatusUnhealthy, outcome.Status)
}

func TestValkeyCLIProbeIsUnhealthyOnEmptyReplyWithNonZeroExit(t *testing.T) {
	subject := newStubSubject(t, "exit 1")

	outcome := subject.Exec(context.Background())

	assert.Equal(t, StatusUnhealthy, outcome.Status)
	assert.Empty(t, outcome.Fault)
}

func TestValkeyCLIProbeErrorsWhenCommandCannotBeStarted(t *testing.T) {
	subject := &valkeyCLIProbe{
		command: filepath.Join(t.TempDir(), "no-such-cli"),
		timeout: probeTimeout,
	}

	outcome := subject.Exec(context.Background())

	assert.Equal(t, StatusError, outcome.Status)
	assert.Contains(t, outcome.Fault, "no such file")
}

func TestValkeyCLIProbeErrorsOnTimeout(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "marker")
	subject := &valkeyCLIProbe{
		command: writeStubCLI(t, fmt.Sprintf("sleep 1\ntouch %s\necho PONG", marker)),
		timeout: 200 * time.Millisecond,
	}

	start := time.Now()
	outcome := subject.Exec(context.Background())

	assert.Less(t, time.Since(start), time.Second, "probe must return at the timeout, not at process exit")
	assert.Equal(t, StatusError, outcome.Status)
	assert.Contains(t, outcome.Fault, "did not complete")

	// the killed stub must never get to run its remaining commands
	time.Sleep(1200 * time.Millisecond)
	assert.NoFileExists(t, marker)
}
