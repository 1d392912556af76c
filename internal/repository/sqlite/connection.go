package sqlite

import (
	"context"
	"fmt"

	"mentorlink/internal/models"
)

func (r *SQLiteRepo) CreateConnectionEvent(ctx context.Context, e *models.ConnectionEvent) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("connection event is nil")
	}

	if e.Created == 0 {
		e.Created = now()
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO connection_events (mentor_id, mentee_id, created_at) VALUES (?, ?, ?)`,
		e.MentorID, e.MenteeID, e.Created)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) CountByMentor(ctx context.Context, mentorID int64) (int64, error) {
	var n int64
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM connection_events WHERE mentor_id = ?`, mentorID)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
