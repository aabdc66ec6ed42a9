package domain

import (
	"fmt"
	"strings"
	"time"
)

// User validation errors. Each wraps ErrValidation so the API layer can map
// any of them to a client error without enumerating the kinds.
var (
	ErrEmptyUsername       = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrUsernameTooLong     = fmt.Errorf("%w: username must be at most 64 characters long", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// User represents a registered account. Username and email are each globally
// unique and immutable after creation. The password hash is never serialized.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only between request decoding and hashing
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a User from registration input. The ID is zero until the
// store assigns one on insert. The caller is responsible for hashing the
// plaintext password before the user is persisted.
func NewUser(username, email, password string) (*User, error) {
	user := &User{
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the business rules on a User. Structural shape (string
// lengths, email format details) is the API layer's concern; this catches
// anything that must hold regardless of how the entity was built.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 64 {
		return ErrUsernameTooLong
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailShape(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		// Plaintext present: this user is being registered, check bounds.
		// 72 bytes is bcrypt's input limit.
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Users loaded from the store must carry a hash.
		return ErrEmptyPassword
	}

	return nil
}

// validEmailShape checks the minimal "local@domain.tld" shape. Full RFC 5322
// validation lives in the request-validation layer.
func validEmailShape(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
