package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"mentorlink/internal/models"
	"mentorlink/pkg/repository"
)

const accountColumns = `id, name, email, role, contact, area, bio, created_at, updated_at, password_hash`

func (r *SQLiteRepo) CreateAccount(ctx context.Context, a *models.Account) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("account is nil")
	}

	ts := now()
	res, err := r.conn.Exec(ctx,
		`INSERT INTO accounts (name, email, password_hash, role, contact, area, bio, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Name, a.Email, a.PasswordHash, a.Role, a.Contact, a.Area, a.Bio, ts, ts)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, fmt.Errorf("insert account %q: %w", a.Email, repository.ErrDuplicateEmail)
		}
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *SQLiteRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *SQLiteRepo) UpdateProfile(ctx context.Context, id int64, name, contact, area, bio string) error {
	_, err := r.conn.Exec(ctx,
		`UPDATE accounts SET name = ?, contact = ?, area = ?, bio = ?, updated_at = ? WHERE id = ?`,
		name, contact, area, bio, now(), id)
	return err
}

func (r *SQLiteRepo) ListMentors(ctx context.Context, area string) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE role = ?`
	args := []any{models.RoleMentor}
	if area != "" {
		query += ` AND area = ?`
		args = append(args, area)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Account
	for rows.Next() {
		a, err := scanAccountRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	a, err := scanAccountRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func scanAccountRow(row interface{ Scan(dest ...any) error }) (*models.Account, error) {
	var a models.Account
	var contact, area, bio sql.NullString
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Role, &contact, &area, &bio, &a.Created, &a.Updated, &a.PasswordHash); err != nil {
		return nil, err
	}
	a.Contact = contact.String
	a.Area = area.String
	a.Bio = bio.String
	return &a, nil
}
