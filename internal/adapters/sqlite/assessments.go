package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"esgtracker/internal/domain"
)

const assessmentColumns = `id, company_id, environmental_score, social_score, governance_score, total_score, scores_data, created_at, updated_at`

// UpsertAssessment mirrors the postgres statement: one INSERT ... SELECT ...
// ON CONFLICT(company_id) plus a revision row, in one transaction.
func (db *DB) UpsertAssessment(ctx context.Context, companyID int64, raw domain.RawScores, result domain.DimensionResult) (out domain.Assessment, err error) {
	if raw == nil {
		raw = domain.RawScores{}
	}
	snapshot, err := json.Marshal(raw)
	if err != nil {
		return out, fmt.Errorf("encode scores: %w", err)
	}

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	tx, err := db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return out, storageErr("begin", err)
	}
	// Stamped once the single writer connection is held, so timestamps
	// follow commit order.
	now := formatTime(time.Now())
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = storageErr("commit", cerr)
		}
	}()

	out, err = scanAssessment(tx.QueryRowContext(ctx, `
		INSERT INTO esg_assessments
			(company_id, environmental_score, social_score, governance_score, total_score, scores_data, created_at, updated_at)
		SELECT c.id, ?, ?, ?, ?, ?, ?, ? FROM companies c WHERE c.id = ?
		ON CONFLICT (company_id) DO UPDATE SET
			environmental_score = excluded.environmental_score,
			social_score = excluded.social_score,
			governance_score = excluded.governance_score,
			total_score = excluded.total_score,
			scores_data = excluded.scores_data,
			updated_at = excluded.updated_at
		RETURNING `+assessmentColumns,
		result.E, result.S, result.G, result.Total, string(snapshot), now, now, companyID))
	if errors.Is(err, sql.ErrNoRows) {
		return out, fmt.Errorf("company %d: %w", companyID, domain.ErrNotFound)
	}
	if err != nil {
		return out, storageErr("upsert assessment", err)
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO esg_assessment_revisions
			(assessment_id, company_id, environmental_score, social_score, governance_score, total_score, scores_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, out.ID, out.CompanyID, out.EnvironmentalScore, out.SocialScore, out.GovernanceScore, out.TotalScore, string(snapshot), now); err != nil {
		return out, storageErr("append revision", err)
	}
	return out, nil
}

func (db *DB) GetLatestAssessment(ctx context.Context, companyID int64) (bool, domain.Assessment, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	a, err := scanAssessment(db.SQL.QueryRowContext(ctx, `
		SELECT `+assessmentColumns+`
		FROM esg_assessments
		WHERE company_id = ?
		ORDER BY updated_at DESC
		LIMIT 1
	`, companyID))
	if errors.Is(err, sql.ErrNoRows) {
		return false, domain.Assessment{}, nil
	}
	if err != nil {
		return false, domain.Assessment{}, storageErr("latest assessment", err)
	}
	return true, a, nil
}

func (db *DB) GetAssessmentHistory(ctx context.Context, companyID int64, limit int) ([]domain.Assessment, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	if limit <= 0 {
		limit = -1
	}
	rows, err := db.SQL.QueryContext(ctx, `
		SELECT r.assessment_id, r.company_id, r.environmental_score, r.social_score, r.governance_score, r.total_score,
			r.scores_data, a.created_at, r.created_at
		FROM esg_assessment_revisions r
		JOIN esg_assessments a ON a.id = r.assessment_id
		WHERE r.company_id = ?
		ORDER BY r.id DESC
		LIMIT ?
	`, companyID, limit)
	if err != nil {
		return nil, storageErr("assessment history", err)
	}
	defer rows.Close()

	out := []domain.Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, storageErr("assessment history", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("assessment history", err)
	}
	return out, nil
}

func scanAssessment(row rowScanner) (domain.Assessment, error) {
	var a domain.Assessment
	var snapshot, created, updated string
	if err := row.Scan(&a.ID, &a.CompanyID, &a.EnvironmentalScore, &a.SocialScore, &a.GovernanceScore, &a.TotalScore,
		&snapshot, &created, &updated); err != nil {
		return a, err
	}
	if err := json.Unmarshal([]byte(snapshot), &a.ScoresData); err != nil {
		return a, fmt.Errorf("decode scores_data: %w", err)
	}
	var err error
	if a.CreatedAt, err = parseTime(created); err != nil {
		return a, err
	}
	if a.UpdatedAt, err = parseTime(updated); err != nil {
		return a, err
	}
	return a, nil
}
