package probe

import (
	"context"
	"os/exec"
	"strings"
	"testing"
)

func TestPingCheckerExecFailureIsFailedProbe(t *testing.T) {
	c := &PingChecker{Binary: "pingwatch-no-such-binary", Family: FamilyUnix}
	res := c.Check(context.Background(), "127.0.0.1")
	if res.Reachable {
		t.Fatalf("expected failed probe, got %+v", res)
	}
	if !strings.HasPrefix(res.Reason, "exec:") {
		t.Fatalf("expected exec reason, got %q", res.Reason)
	}
}

func TestPingCheckerLoopback(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping ping integration test in short mode")
	}
	if _, err := exec.LookPath("ping"); err != nil {
		t.Skip("ping binary not available on PATH")
	}

	c := NewPingChecker()
	res := c.Check(context.Background(), "127.0.0.1")
	if !res.Reachable {
		t.Skipf("loopback ping not parseable in this environment: %+v", res)
	}
	if res.SourceAddr != "127.0.0.1" {
		t.Errorf("expected source 127.0.0.1, got %q", res.SourceAddr)
	}
	if res.TTL <= 0 {
		t.Errorf("expected positive TTL, got %d", res.TTL)
	}
}
