package auth

import (
	"errors"
	"strings"

	"leather-sandals-store/internal/domain/user"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrRefreshTokenRequired = errors.New("refresh token required")
)

// Credentials is a login attempt. The email is compared case-insensitively.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is a self-service sign-up. It always yields a customer.
type Registration struct {
	Credentials
	fullName user.FullName
}

func NewRegistration(emailStr, passwordStr, fullNameStr string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	fullName, err := user.NewFullName(fullNameStr)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Credentials: creds, fullName: fullName}, nil
}

func (r Registration) FullName() user.FullName {
	return r.fullName
}

// RefreshToken picks the cookie value over the body value.
func RefreshToken(fromCookie, fromBody string) (string, error) {
	if t := strings.TrimSpace(fromCookie); t != "" {
		return t, nil
	}
	if t := strings.TrimSpace(fromBody); t != "" {
		return t, nil
	}
	return "", ErrRefreshTokenRequired
}
