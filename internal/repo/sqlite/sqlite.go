package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/hamed0406/pingwatch/internal/domain"
	"github.com/hamed0406/pingwatch/internal/repo"
)

// Store keeps probe history in an embedded sqlite database.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open failed: %w", err)
	}

	// WAL mode for concurrent reads while the probe loop writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS probes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		target TEXT NOT NULL,
		reachable BOOLEAN NOT NULL,
		source_addr TEXT,
		rtt_ms REAL,
		ttl INTEGER,
		reason TEXT,
		probed_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_probes_target_time ON probes(target, probed_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Append(ctx context.Context, r *domain.ProbeRecord) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO probes (target, reachable, source_addr, rtt_ms, ttl, reason, probed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Target, r.Reachable, r.SourceAddr, r.RTTMillis, r.TTL, r.Reason, r.ProbedAt,
	)
	if err != nil {
		return fmt.Errorf("insert probe failed: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		r.ID = id
	}
	return nil
}

func (s *Store) Recent(ctx context.Context, limit int) ([]*domain.ProbeRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, target, reachable, source_addr, rtt_ms, ttl, reason, probed_at
		 FROM probes ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query probes failed: %w", err)
	}
	defer rows.Close()

	var out []*domain.ProbeRecord
	for rows.Next() {
		var r domain.ProbeRecord
		var src, reason sql.NullString
		var rtt sql.NullFloat64
		var ttl sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Target, &r.Reachable, &src, &rtt, &ttl, &reason, &r.ProbedAt); err != nil {
			return nil, fmt.Errorf("scan probe failed: %w", err)
		}
		r.SourceAddr = src.String
		r.Reason = reason.String
		if rtt.Valid {
			v := rtt.Float64
			r.RTTMillis = &v
		}
		if ttl.Valid {
			v := int(ttl.Int64)
			r.TTL = &v
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

func (s *Store) Summary(ctx context.Context, target string) (*repo.TargetSummary, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(reachable), 0),
		        AVG(CASE WHEN reachable THEN rtt_ms END)
		 FROM probes WHERE target = ?`, target)

	out := &repo.TargetSummary{Target: target}
	var avg sql.NullFloat64
	if err := row.Scan(&out.Probes, &out.Successes, &avg); err != nil {
		return nil, fmt.Errorf("summary query failed: %w", err)
	}
	out.Failures = out.Probes - out.Successes
	if avg.Valid {
		v := avg.Float64
		out.AvgRTTMillis = &v
	}
	return out, nil
}
