package repository

import (
	"context"
	"errors"

	"mentorlink/internal/models"
)

// ErrDuplicateEmail is returned by CreateAccount when the email is already
// registered (unique constraint on accounts.email).
var ErrDuplicateEmail = errors.New("email already registered")

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type AccountRepo interface {
	CreateAccount(ctx context.Context, a *models.Account) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	// UpdateProfile writes the mutable profile fields only; id, email and
	// role are immutable through this path.
	UpdateProfile(ctx context.Context, id int64, name, contact, area, bio string) error
	// ListMentors returns mentor accounts ordered by id ascending, filtered
	// by exact area match when area is non-empty.
	ListMentors(ctx context.Context, area string) ([]models.Account, error)
}

type ConnectionRepo interface {
	CreateConnectionEvent(ctx context.Context, e *models.ConnectionEvent) (int64, error)
	CountByMentor(ctx context.Context, mentorID int64) (int64, error)
}
