// Package auth gates storefront operations by session role. A session comes
// from one of two static credential pairs, one per role.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/dwikikusuma/refill-store/pkg/config"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("operation not allowed for this session")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type Session struct {
	Username string
	Role     Role
}

type account struct {
	password string
	role     Role
}

type Authenticator struct {
	accounts map[string]account
}

func NewAuthenticator(customer, admin config.Credentials) *Authenticator {
	return &Authenticator{
		accounts: map[string]account{
			customer.Username: {password: customer.Password, role: RoleCustomer},
			admin.Username:    {password: admin.Password, role: RoleAdmin},
		},
	}
}

func (a *Authenticator) Login(username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	acc, ok := a.accounts[username]
	if !ok || username == "" {
		return Session{}, ErrUnauthenticated
	}
	if subtle.ConstantTimeCompare([]byte(acc.password), []byte(password)) != 1 {
		return Session{}, ErrUnauthenticated
	}
	return Session{Username: username, Role: acc.role}, nil
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// Require returns the caller's session if its role may perform op.
func Require(ctx context.Context, op Operation) (Session, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return Session{}, ErrUnauthenticated
	}
	if !s.Role.Allows(op) {
		return Session{}, ErrForbidden
	}
	return s, nil
}
