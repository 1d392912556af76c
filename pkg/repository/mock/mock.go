package mock

import (
	"context"

	"mentorlink/internal/models"
	"mentorlink/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	Accounts    *AccountRepo
	Connections *ConnectionRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Accounts:    &AccountRepo{},
		Connections: &ConnectionRepo{},
	}
}

type AccountRepo struct {
	Stored    *models.Account
	Mentors   []models.Account
	CreateErr error
	ListErr   error
	UpdateErr error
}

func (m *AccountRepo) CreateAccount(ctx context.Context, a *models.Account) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	if m.Stored != nil && m.Stored.Email == a.Email {
		return 0, repository.ErrDuplicateEmail
	}
	stored := *a
	stored.ID = 1
	m.Stored = &stored
	return 1, nil
}

func (m *AccountRepo) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *AccountRepo) UpdateProfile(ctx context.Context, id int64, name, contact, area, bio string) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if m.Stored != nil && m.Stored.ID == id {
		m.Stored.Name = name
		m.Stored.Contact = contact
		m.Stored.Area = area
		m.Stored.Bio = bio
	}
	return nil
}

func (m *AccountRepo) ListMentors(ctx context.Context, area string) ([]models.Account, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if area == "" {
		return m.Mentors, nil
	}
	var out []models.Account
	for _, a := range m.Mentors {
		if a.Area == area {
			out = append(out, a)
		}
	}
	return out, nil
}

type ConnectionRepo struct {
	Events    []models.ConnectionEvent
	CreateErr error
}

func (m *ConnectionRepo) CreateConnectionEvent(ctx context.Context, e *models.ConnectionEvent) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *e
	stored.ID = int64(len(m.Events) + 1)
	m.Events = append(m.Events, stored)
	return stored.ID, nil
}

func (m *ConnectionRepo) CountByMentor(ctx context.Context, mentorID int64) (int64, error) {
	var n int64
	for _, e := range m.Events {
		if e.MentorID == mentorID {
			n++
		}
	}
	return n, nil
}
