// Package auth verifies the HS256 bearer tokens minted for API callers.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/dispatch/internal/http/respond"
)

type Role string

const (
	RoleClient  Role = "client"
	RoleDriver  Role = "driver"
	RoleManager Role = "manager"
	RoleAgent   Role = "agent"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleDriver, RoleManager, RoleAgent:
		return true
	}

	return false
}

// Staff is every role working for the company.
var Staff = []Role{RoleDriver, RoleManager, RoleAgent}

// Office is the staff allowed to handle clients, shipments and money.
var Office = []Role{RoleManager, RoleAgent}

type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the verified caller. Subject is the client, driver, manager or
// agent id the token was issued for.
type Principal struct {
	Subject uuid.UUID
	Role    Role
}

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}

type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for subject. It backs the token command and tests.
func (a *Authenticator) Issue(subject uuid.UUID, role Role) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify parses a raw token and returns its principal.
func (a *Authenticator) Verify(raw string) (Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Principal{}, err
	}

	if !token.Valid {
		return Principal{}, errors.New("invalid token")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("invalid subject: %w", err)
	}

	if !claims.Role.Valid() {
		return Principal{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	return Principal{Subject: subject, Role: claims.Role}, nil
}

// Middleware rejects requests without a valid bearer token.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			respond.Status(w, http.StatusUnauthorized, "authentication required")
			return
		}

		p, err := a.Verify(raw)
		if err != nil {
			respond.Status(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

// RequireRole lets through only principals holding one of roles.
func RequireRole(roles ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := FromContext(r.Context())
			if !ok || !slices.Contains(roles, p.Role) {
				respond.Status(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
