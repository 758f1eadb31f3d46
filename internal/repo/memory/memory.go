package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hamed0406/pingwatch/internal/domain"
	"github.com/hamed0406/pingwatch/internal/repo"
)

type Store struct {
	mu      sync.RWMutex
	records []*domain.ProbeRecord
	nextID  int64
}

func New() *Store {
	return &Store{records: make([]*domain.ProbeRecord, 0, 128)}
}

func (m *Store) Append(ctx context.Context, r *domain.ProbeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	if r.ProbedAt.IsZero() {
		r.ProbedAt = time.Now().UTC()
	}
	m.records = append(m.records, r)
	return nil
}

// Recent returns up to limit records, newest first.
func (m *Store) Recent(ctx context.Context, limit int) ([]*domain.ProbeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 || limit > len(m.records) {
		limit = len(m.records)
	}
	out := make([]*domain.ProbeRecord, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func (m *Store) Summary(ctx context.Context, target string) (*repo.TargetSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := &repo.TargetSummary{Target: target}
	var rttSum float64
	var rttN int
	for _, r := range m.records {
		if r.Target != target {
			continue
		}
		s.Probes++
		if r.Reachable {
			s.Successes++
			if r.RTTMillis != nil {
				rttSum += *r.RTTMillis
				rttN++
			}
		} else {
			s.Failures++
		}
	}
	if rttN > 0 {
		avg := rttSum / float64(rttN)
		s.AvgRTTMillis = &avg
	}
	return s, nil
}
