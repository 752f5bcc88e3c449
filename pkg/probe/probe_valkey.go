package probe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	valkeyCommand = "valkey-cli"
	healthyReply  = "PONG"
	probeTimeout  = 2 * time.Second
)

type valkeyCLIProbe struct {
	command string
	timeout time.Duration
}

func NewValkeyCLIProbe() *valkeyCLIProbe {
	return &valkeyCLIProbe{
		command: valkeyCommand,
		timeout: probeTimeout,
	}
}

// Exec runs `valkey-cli PING` once and classifies the result. The
// datastore counts as healthy only when the trimmed stdout equals
// "PONG"; a process that completes with any other output (non-zero
// exit included) is unhealthy, and everything else - start failure,
// timeout, I/O fault - is an error. Exit codes are not interpreted
// beyond that.
func (p *valkeyCLIProbe) Exec(ctx context.Context) Outcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// CommandContext kills the child on deadline expiry, so a hung
	// CLI cannot leak past the timeout.
	out, err := exec.CommandContext(ctx, p.command, "PING").Output()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Outcome{
			Status: StatusError,
			Fault:  fmt.Sprintf("command %q did not complete within %s", p.command, p.timeout),
		}
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Outcome{Status: StatusError, Fault: err.Error()}
	}

	if strings.TrimSpace(string(out)) != healthyReply {
		return Outcome{Status: StatusUnhealthy}
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "valkey", "status": "alive"}).Debug()
	return Outcome{Status: StatusHealthy}
}
