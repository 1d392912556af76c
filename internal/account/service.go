package account

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"mentorlink/internal/models"
	"mentorlink/pkg/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound indicates the requested account does not exist.
	ErrNotFound = errors.New("account not found")
	// ErrUnauthorized indicates the operation requires an authenticated caller.
	ErrUnauthorized = errors.New("authentication required")
)

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// AuthContext carries the authenticated caller's identity into operations
// that need it. It is always threaded explicitly by the caller, never read
// from ambient state.
type AuthContext struct {
	AccountID int64
	Role      models.Role
}

func (a AuthContext) Authenticated() bool {
	return a.AccountID > 0
}

// Directory view markers: mentees get a mentor listing, mentors get their
// own panel instead of a peer listing.
const (
	ViewMentors     = "mentors"
	ViewMentorPanel = "mentor_panel"
)

// DirectoryView is the result of ListCounterparts. Mentors is populated only
// for the ViewMentors case; Connections only for ViewMentorPanel.
type DirectoryView struct {
	View        string
	Mentors     []models.Account
	Connections int64
}

// Service implements the account, directory and connection-logging
// operations on top of the repositories.
type Service struct {
	accounts    repository.AccountRepo
	connections repository.ConnectionRepo
	bcryptCost  int
	logger      *slog.Logger
}

func NewService(accounts repository.AccountRepo, connections repository.ConnectionRepo, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Service{accounts: accounts, connections: connections, bcryptCost: bcryptCost, logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	Contact  string
	Area     string
	Bio      string
}

// Register creates a new account with a bcrypt password hash. The email must
// be unused; repository.ErrDuplicateEmail passes through on a unique
// constraint violation so no partial record is ever created.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Account, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if in.Email == "" {
		return nil, &ValidationError{Field: "email"}
	}
	if in.Password == "" {
		return nil, &ValidationError{Field: "password"}
	}
	if !in.Role.Valid() {
		return nil, &ValidationError{Field: "role"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &models.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Contact:      strings.TrimSpace(in.Contact),
		Area:         strings.TrimSpace(in.Area),
		Bio:          in.Bio,
	}

	id, err := s.accounts.CreateAccount(ctx, a)
	if err != nil {
		return nil, err
	}

	created, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load created account: %w", err)
	}
	if created == nil {
		return nil, ErrNotFound
	}

	s.logger.Info("account registered", slog.Int64("id", created.ID), slog.String("role", string(created.Role)))
	return created, nil
}

// Authenticate looks up the account by email and verifies the password
// against the stored bcrypt hash. Unknown email and wrong password both
// yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if a == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

type UpdateProfileInput struct {
	Name    string
	Contact string
	Area    string
	Bio     string
}

// UpdateProfile writes the mutable profile fields and returns the refreshed
// account. Email and role are immutable through this path; the caller is
// expected to re-issue any session material that carries name or area.
func (s *Service) UpdateProfile(ctx context.Context, id int64, in UpdateProfileInput) (*models.Account, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}

	existing, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if err := s.accounts.UpdateProfile(ctx, id, in.Name, strings.TrimSpace(in.Contact), strings.TrimSpace(in.Area), in.Bio); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	updated, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load updated account: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// ListCounterparts returns the directory view for the caller's role: mentees
// get the mentor listing (optionally filtered by exact area), mentors get
// their panel with the count of outreach events they received.
func (s *Service) ListCounterparts(ctx context.Context, auth AuthContext, area string) (*DirectoryView, error) {
	if !auth.Authenticated() {
		return nil, ErrUnauthorized
	}

	if auth.Role != models.RoleMentee {
		n, err := s.connections.CountByMentor(ctx, auth.AccountID)
		if err != nil {
			return nil, fmt.Errorf("count connections: %w", err)
		}
		return &DirectoryView{View: ViewMentorPanel, Connections: n}, nil
	}

	mentors, err := s.accounts.ListMentors(ctx, strings.TrimSpace(area))
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	if mentors == nil {
		mentors = []models.Account{}
	}
	return &DirectoryView{View: ViewMentors, Mentors: mentors}, nil
}

// LogConnection appends one outreach event linking the calling mentee to the
// given mentor. It is fire-and-forget telemetry: repeated pairs log repeated
// rows and the target is not checked to be a mentor account.
func (s *Service) LogConnection(ctx context.Context, auth AuthContext, mentorID int64) (*models.ConnectionEvent, error) {
	if !auth.Authenticated() {
		return nil, ErrUnauthorized
	}

	e := &models.ConnectionEvent{
		MentorID: mentorID,
		MenteeID: auth.AccountID,
	}
	id, err := s.connections.CreateConnectionEvent(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("log connection: %w", err)
	}
	e.ID = id

	s.logger.Info("connection logged", slog.Int64("mentor_id", mentorID), slog.Int64("mentee_id", auth.AccountID))
	return e, nil
}
