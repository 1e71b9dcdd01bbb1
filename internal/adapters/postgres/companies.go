package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"esgtracker/internal/domain"
)

const uniqueViolation = "23505"

const companyColumns = `id, name, email, password_hash, email_domain, created_at`

// CompanyRepository
func (db *DB) CreateCompany(ctx context.Context, c domain.NewCompany) (domain.Company, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	// The unique index on email decides duplicates; no pre-check.
	out, err := scanCompany(db.Pool.QueryRow(ctx, `
        INSERT INTO companies (name, email, password_hash, email_domain)
        VALUES ($1, $2, $3, $4)
        RETURNING `+companyColumns,
		c.Name, c.Email, c.PasswordHash, c.EmailDomain))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.Company{}, domain.ErrDuplicateEmail
	}
	if err != nil {
		return domain.Company{}, storageErr("create company", err)
	}
	return out, nil
}

func (db *DB) GetCompanyByEmail(ctx context.Context, email string) (bool, domain.Company, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	c, err := scanCompany(db.Pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE email = $1`, email))
	return companyResult(c, err, "get company by email")
}

func (db *DB) GetCompany(ctx context.Context, id int64) (bool, domain.Company, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	c, err := scanCompany(db.Pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	return companyResult(c, err, "get company")
}

func (db *DB) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	rows, err := db.Pool.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, storageErr("list companies", err)
	}
	defer rows.Close()

	var out []domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, storageErr("list companies", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list companies", err)
	}
	return out, nil
}

func scanCompany(row pgx.Row) (domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.EmailDomain, &c.CreatedAt)
	return c, err
}

func companyResult(c domain.Company, err error, op string) (bool, domain.Company, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return false, domain.Company{}, nil
	}
	if err != nil {
		return false, domain.Company{}, storageErr(op, err)
	}
	return true, c, nil
}
