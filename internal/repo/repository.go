package repo

import (
	"context"

	"github.com/hamed0406/pingwatch/internal/domain"
)

// ProbeStore is the port for probe history — swap in any DB adapter.
type ProbeStore interface {
	Append(ctx context.Context, r *domain.ProbeRecord) error
	Recent(ctx context.Context, limit int) ([]*domain.ProbeRecord, error)
	Summary(ctx context.Context, target string) (*TargetSummary, error)
}

// TargetSummary aggregates stored probes for one target.
type TargetSummary struct {
	Target       string   `json:"target"`
	Probes       int      `json:"probes"`
	Successes    int      `json:"successes"`
	Failures     int      `json:"failures"`
	AvgRTTMillis *float64 `json:"avg_rtt_ms"`
}
