package domain

import "time"

// ProbeRecord is one persisted probe outcome.
type ProbeRecord struct {
	ID         int64     `json:"id,omitempty"`
	Target     string    `json:"target"`
	Reachable  bool      `json:"reachable"`
	SourceAddr string    `json:"source_addr,omitempty"`
	RTTMillis  *float64  `json:"rtt_ms"` // pointer to allow nil
	TTL        *int      `json:"ttl"`    // pointer to allow nil
	Reason     string    `json:"reason,omitempty"`
	ProbedAt   time.Time `json:"probed_at"`
}
