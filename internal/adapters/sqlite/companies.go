package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"esgtracker/internal/domain"
)

const companyColumns = `id, name, email, password_hash, email_domain, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func (db *DB) CreateCompany(ctx context.Context, c domain.NewCompany) (domain.Company, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	out, err := scanCompany(db.SQL.QueryRowContext(ctx, `
		INSERT INTO companies (name, email, password_hash, email_domain, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+companyColumns,
		c.Name, c.Email, c.PasswordHash, c.EmailDomain, formatTime(time.Now())))
	if isUniqueViolation(err) {
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
	c, err := scanCompany(db.SQL.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE email = ?`, email))
	return companyResult(c, err, "get company by email")
}

func (db *DB) GetCompany(ctx context.Context, id int64) (bool, domain.Company, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	c, err := scanCompany(db.SQL.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id))
	return companyResult(c, err, "get company")
}

func (db *DB) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	rows, err := db.SQL.QueryContext(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC, id DESC`)
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

func scanCompany(row rowScanner) (domain.Company, error) {
	var c domain.Company
	var created string
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.EmailDomain, &created); err != nil {
		return c, err
	}
	t, err := parseTime(created)
	if err != nil {
		return c, err
	}
	c.CreatedAt = t
	return c, nil
}

func companyResult(c domain.Company, err error, op string) (bool, domain.Company, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return false, domain.Company{}, nil
	}
	if err != nil {
		return false, domain.Company{}, storageErr(op, err)
	}
	return true, c, nil
}

// isUniqueViolation accepts the base constraint code in case extended
// result codes are off; companies has no other constraint that can fail.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
