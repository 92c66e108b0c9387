package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/neerajdhurandher/autofill-engine/internal/common"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// SaveLearnedPattern inserts or refreshes a learned pattern keyed by
// fingerprint.
func (s *SQLiteStorage) SaveLearnedPattern(ctx context.Context, p *model.LearnedPattern) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateLearnedPattern(p); err != nil {
		return err
	}

	query := `
		INSERT INTO learned_patterns (fingerprint, category, confidence, site, seen_at, use_count)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(fingerprint) DO UPDATE SET
			category = excluded.category,
			confidence = excluded.confidence,
			site = excluded.site,
			seen_at = excluded.seen_at,
			use_count = learned_patterns.use_count + 1
	`
	if _, err := s.db.ExecContext(ctx, query,
		p.Fingerprint, string(p.Category), p.Confidence, p.Site, p.SeenAt, p.UseCount); err != nil {
		return fmt.Errorf("failed to save learned pattern: %w", err)
	}
	return nil
}

// GetLearnedPattern retrieves one pattern by fingerprint.
func (s *SQLiteStorage) GetLearnedPattern(ctx context.Context, fingerprint string) (*model.LearnedPattern, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(fingerprint, "fingerprint"); err != nil {
		return nil, err
	}

	var p model.LearnedPattern
	var category string
	err := s.db.QueryRowContext(ctx, `
		SELECT fingerprint, category, confidence, COALESCE(site, ''), seen_at, use_count
		FROM learned_patterns WHERE fingerprint = ?
	`, fingerprint).Scan(&p.Fingerprint, &category, &p.Confidence, &p.Site, &p.SeenAt, &p.UseCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("learned pattern %q: %w", fingerprint, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get learned pattern: %w", err)
	}
	p.Category = model.Category(category)
	return &p, nil
}

// ListLearnedPatterns returns all patterns, most recently seen first.
func (s *SQLiteStorage) ListLearnedPatterns(ctx context.Context) ([]model.LearnedPattern, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT fingerprint, category, confidence, COALESCE(site, ''), seen_at, use_count
		FROM learned_patterns ORDER BY seen_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list learned patterns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var patterns []model.LearnedPattern
	for rows.Next() {
		var p model.LearnedPattern
		var category string
		if err := rows.Scan(&p.Fingerprint, &category, &p.Confidence, &p.Site, &p.SeenAt, &p.UseCount); err != nil {
			return nil, fmt.Errorf("failed to scan learned pattern: %w", err)
		}
		p.Category = model.Category(category)
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

// PruneLearnedPatterns evicts the oldest entries past the cap. The cache is
// an optimization, not a source of truth, so eviction is silent.
func (s *SQLiteStorage) PruneLearnedPatterns(ctx context.Context, keep int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if keep <= 0 {
		return fmt.Errorf("keep must be positive, got %d", keep)
	}

	query := `
		DELETE FROM learned_patterns WHERE fingerprint NOT IN (
			SELECT fingerprint FROM learned_patterns ORDER BY seen_at DESC LIMIT ?
		)
	`
	if _, err := s.db.ExecContext(ctx, query, keep); err != nil {
		return fmt.Errorf("failed to prune learned patterns: %w", err)
	}
	return nil
}

// ClearLearnedPatterns removes every cached pattern.
func (s *SQLiteStorage) ClearLearnedPatterns(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM learned_patterns`); err != nil {
		return fmt.Errorf("failed to clear learned patterns: %w", err)
	}
	return nil
}

// CountLearnedPatterns returns the number of cached patterns.
func (s *SQLiteStorage) CountLearnedPatterns(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM learned_patterns`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count learned patterns: %w", err)
	}
	return n, nil
}
