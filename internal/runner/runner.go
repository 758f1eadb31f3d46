package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/pingwatch/internal/domain"
	"github.com/hamed0406/pingwatch/internal/probe"
	"github.com/hamed0406/pingwatch/internal/repo"
)

// Stats accumulates probe outcomes for one run. At any point
// Successes+Failures equals the number of probes completed.
type Stats struct {
	Successes int
	Failures  int
}

// Runner drives the probe loop for a single target and owns its Stats.
type Runner struct {
	Logger  *zap.Logger
	Checker probe.Checker
	Store   repo.ProbeStore // optional; nil disables history
	Target  string
	Count   int           // probes to send; 0 means run until ctx is cancelled
	Delay   time.Duration // wait between probes, skipped after the last one
}

func New(
	logger *zap.Logger,
	checker probe.Checker,
	store repo.ProbeStore,
	target string,
	count int,
	delay time.Duration,
) *Runner {
	if count < 0 {
		count = 0
	}
	if delay < 0 {
		delay = 0
	}
	return &Runner{
		Logger:  logger,
		Checker: checker,
		Store:   store,
		Target:  target,
		Count:   count,
		Delay:   delay,
	}
}

// Run blocks until the configured number of probes completes or ctx is
// cancelled. Probes run strictly in order and the summary line is
// always the last thing logged, including on cancellation.
func (r *Runner) Run(ctx context.Context) Stats {
	var stats Stats

	mode := "indefinitely"
	if r.Count > 0 {
		mode = fmt.Sprintf("%d time(s)", r.Count)
	}
	r.Logger.Info(fmt.Sprintf("Pinging %s [repeat: %s]", r.Target, mode))

	defer func() {
		r.Logger.Info(
			fmt.Sprintf("Ping %s complete. Successes: %d, Failures: %d",
				r.Target, stats.Successes, stats.Failures),
			zap.Int("successes", stats.Successes),
			zap.Int("failures", stats.Failures),
		)
	}()

	for i := 0; r.Count == 0 || i < r.Count; i++ {
		select {
		case <-ctx.Done():
			r.Logger.Info("Ping interrupted")
			return stats
		default:
		}

		r.Logger.Debug(fmt.Sprintf("Ping [%d/%d]", i+1, r.Count))

		res := r.Checker.Check(ctx, r.Target)
		if res.Reachable {
			stats.Successes++
			r.Logger.Info("Reply from "+r.Target+" - Success",
				zap.String("source", res.SourceAddr),
				zap.Float64("rtt_ms", res.RTTMillis),
				zap.Int("ttl", res.TTL),
			)
		} else {
			stats.Failures++
			r.Logger.Warn("No reply from "+r.Target+" - Failure",
				zap.String("reason", res.Reason),
			)
			r.Logger.Debug("raw ping output", zap.String("raw", res.Raw))
		}

		r.record(ctx, res)

		if r.Count > 0 && i == r.Count-1 {
			break // no delay after the final probe
		}
		if !r.sleep(ctx) {
			r.Logger.Info("Ping interrupted")
			return stats
		}
	}
	return stats
}

func (r *Runner) record(ctx context.Context, res probe.Result) {
	if r.Store == nil {
		return
	}
	rec := &domain.ProbeRecord{
		Target:     r.Target,
		Reachable:  res.Reachable,
		SourceAddr: res.SourceAddr,
		Reason:     res.Reason,
		ProbedAt:   time.Now().UTC(),
	}
	if res.Reachable {
		rtt := res.RTTMillis
		ttl := res.TTL
		rec.RTTMillis = &rtt
		rec.TTL = &ttl
	}
	if err := r.Store.Append(ctx, rec); err != nil {
		r.Logger.Warn("probe_append_error", zap.Error(err))
	}
}

// sleep waits out the inter-probe delay. Returns false when ctx was
// cancelled before the delay elapsed.
func (r *Runner) sleep(ctx context.Context) bool {
	if r.Delay <= 0 {
		return true
	}
	t := time.NewTimer(r.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
