package domain

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserStatus is a plain enumerated standing, not a privilege hierarchy.
// Users with UserStatusPro hold the elevated standing required for
// restricted-visibility movies.
type UserStatus string

const (
	UserStatusSimple UserStatus = "simple"
	UserStatusPro    UserStatus = "pro"
)

type User struct {
	ID        int
	Username  string
	Email     string
	Password  password
	FirstName string
	LastName  string
	Age       *int
	Phone     *string
	AvatarUrl *string
	Status    UserStatus
	Activated bool
	CreatedAt time.Time
	Version   int
}

// Elevated reports whether the user may view host-restricted movies.
func (u *User) Elevated() bool {
	return u.Status == UserStatusPro
}

type password struct {
	plaintext *string
	Hash      []byte
}

func (p *password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

func (p *password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

type UserRepository interface {
	// Create persists a new user, failing with ErrDuplicateUsername or
	// ErrDuplicateEmail on unique violations.
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetById(ctx context.Context, id int) (*User, error)
	// Update applies profile changes with optimistic locking; a stale
	// version fails with ErrEditConflict.
	Update(ctx context.Context, user *User) error
}
