package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"esgtracker/internal/domain"
)

const assessmentColumns = `id, company_id, environmental_score, social_score, governance_score, total_score, scores_data, created_at, updated_at`

// UpsertAssessment writes the current row with a single INSERT ... ON
// CONFLICT keyed by company_id, so concurrent first saves cannot both
// insert. The SELECT from companies turns an unknown company into zero rows.
// The revision id is drawn while the row lock is held, so revision ids
// follow commit order; clock_timestamp keeps updated_at monotonic with them.
func (db *DB) UpsertAssessment(ctx context.Context, companyID int64, raw domain.RawScores, result domain.DimensionResult) (out domain.Assessment, err error) {
	snapshot, err := encodeScores(raw)
	if err != nil {
		return out, err
	}

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return out, storageErr("begin", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = storageErr("commit", cerr)
		}
	}()

	out, err = scanAssessment(tx.QueryRow(ctx, `
        INSERT INTO esg_assessments (company_id, environmental_score, social_score, governance_score, total_score, scores_data, created_at, updated_at)
        SELECT c.id, $2, $3, $4, $5, $6::jsonb, ts, ts
        FROM companies c CROSS JOIN clock_timestamp() AS ts
        WHERE c.id = $1
        ON CONFLICT (company_id) DO UPDATE SET
            environmental_score = EXCLUDED.environmental_score,
            social_score = EXCLUDED.social_score,
            governance_score = EXCLUDED.governance_score,
            total_score = EXCLUDED.total_score,
            scores_data = EXCLUDED.scores_data,
            updated_at = clock_timestamp()
        RETURNING `+assessmentColumns,
		companyID, result.E, result.S, result.G, result.Total, snapshot))
	if errors.Is(err, pgx.ErrNoRows) {
		return out, fmt.Errorf("company %d: %w", companyID, domain.ErrNotFound)
	}
	if err != nil {
		return out, storageErr("upsert assessment", err)
	}

	if _, err = tx.Exec(ctx, `
        INSERT INTO esg_assessment_revisions
            (assessment_id, company_id, environmental_score, social_score, governance_score, total_score, scores_data, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8)
    `, out.ID, out.CompanyID, out.EnvironmentalScore, out.SocialScore, out.GovernanceScore, out.TotalScore, snapshot, out.UpdatedAt); err != nil {
		return out, storageErr("append revision", err)
	}
	return out, nil
}

func (db *DB) GetLatestAssessment(ctx context.Context, companyID int64) (bool, domain.Assessment, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	a, err := scanAssessment(db.Pool.QueryRow(ctx, `
        SELECT `+assessmentColumns+`
        FROM esg_assessments
        WHERE company_id = $1
        ORDER BY updated_at DESC
        LIMIT 1
    `, companyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return false, domain.Assessment{}, nil
	}
	if err != nil {
		return false, domain.Assessment{}, storageErr("latest assessment", err)
	}
	return true, a, nil
}

// GetAssessmentHistory reports each revision under the current row's id.
func (db *DB) GetAssessmentHistory(ctx context.Context, companyID int64, limit int) ([]domain.Assessment, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := db.Pool.Query(ctx, `
        SELECT r.assessment_id, r.company_id, r.environmental_score, r.social_score, r.governance_score, r.total_score,
            r.scores_data, a.created_at, r.created_at
        FROM esg_assessment_revisions r
        JOIN esg_assessments a ON a.id = r.assessment_id
        WHERE r.company_id = $1
        ORDER BY r.id DESC
        LIMIT $2
    `, companyID, lim)
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

func scanAssessment(row pgx.Row) (domain.Assessment, error) {
	var a domain.Assessment
	var snapshot []byte
	if err := row.Scan(&a.ID, &a.CompanyID, &a.EnvironmentalScore, &a.SocialScore, &a.GovernanceScore, &a.TotalScore,
		&snapshot, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return a, err
	}
	if err := json.Unmarshal(snapshot, &a.ScoresData); err != nil {
		return a, fmt.Errorf("decode scores_data: %w", err)
	}
	return a, nil
}

func encodeScores(raw domain.RawScores) (string, error) {
	if raw == nil {
		raw = domain.RawScores{}
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("encode scores: %w", err)
	}
	return string(b), nil
}
