package probe

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"
)

// PingChecker shells out to the operating system's ping binary for a
// single echo request and classifies its stdout.
type PingChecker struct {
	Binary string
	Family OSFamily
}

func NewPingChecker() *PingChecker {
	return &PingChecker{
		Binary: "ping",
		Family: FamilyFromGOOS(runtime.GOOS),
	}
}

func (c *PingChecker) Check(ctx context.Context, target string) Result {
	bin := c.Binary
	if bin == "" {
		bin = "ping"
	}

	var cmd *exec.Cmd
	if c.Family == FamilyWindows {
		cmd = exec.CommandContext(ctx, bin, target, "-n", "1")
	} else {
		cmd = exec.CommandContext(ctx, bin, "-c", "1", target)
	}

	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	// Exit status is informative only: an unreachable host makes ping
	// exit nonzero while still printing output worth parsing.
	runErr := cmd.Run()

	res := Parse(out.String(), c.Family)
	if runErr != nil && !res.Reachable && strings.TrimSpace(out.String()) == "" {
		// Nothing on stdout at all: the binary failed to run, not the probe.
		res.Reason = "exec: " + runErr.Error()
	}
	return res
}
