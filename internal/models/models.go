package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// Role is the account kind, fixed at registration.
type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// Valid reports whether the role is one of the two known kinds.
func (r Role) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

type Account struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	Role         Role   `json:"role" db:"role"`
	Contact      string `json:"contact,omitempty" db:"contact"`
	Area         string `json:"area,omitempty" db:"area"`
	Bio          string `json:"bio,omitempty" db:"bio"`
	Created      int64  `json:"created" db:"created_at"`
	Updated      int64  `json:"updated" db:"updated_at"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// ConnectionEvent records that a mentee reached out to a mentor. Rows are
// append-only; repeated pairs are kept as separate rows on purpose (the table
// doubles as an engagement counter).
type ConnectionEvent struct {
	ID       int64 `json:"id" db:"id"`
	MentorID int64 `json:"mentor_id" db:"mentor_id"`
	MenteeID int64 `json:"mentee_id" db:"mentee_id"`
	Created  int64 `json:"created" db:"created_at"`
}
