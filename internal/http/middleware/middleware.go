// Package middleware carries request identity and tenant context and
// enforces permission checks in front of the handlers.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/openbooks-dev/openbooks/internal/http/respond"
	"github.com/openbooks-dev/openbooks/internal/permission"
	"github.com/openbooks-dev/openbooks/internal/tenant"
)

// Identity is the authenticated caller, decoded from the bearer token.
// Credential verification happens upstream; this layer only trusts the
// token's signature.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

type contextKey int

const (
	identityKey contextKey = iota
	companyKey
)

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

func CompanyFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(companyKey).(uuid.UUID)
	return id, ok
}

// Authenticate decodes the Authorization bearer token into an Identity. A
// request without a token passes through anonymous; permission checks
// reject it later. A present but invalid token is rejected outright.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				respond.Error(w, permission.ErrUnauthenticated)
				return
			}

			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
				}
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				respond.Error(w, permission.ErrUnauthenticated)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				respond.Error(w, permission.ErrUnauthenticated)
				return
			}

			sub, err := claims.GetSubject()
			if err != nil {
				respond.Error(w, permission.ErrUnauthenticated)
				return
			}

			userID, err := uuid.Parse(sub)
			if err != nil {
				respond.Error(w, permission.ErrUnauthenticated)
				return
			}

			role, _ := claims["role"].(string)

			ctx := context.WithValue(r.Context(), identityKey, Identity{
				UserID: userID,
				Role:   role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type TenantResolver interface {
	Resolve(ctx context.Context, explicit, userID uuid.UUID) (uuid.UUID, error)
}

// ResolveTenant establishes the active company: the X-Company-ID header
// when present, else the caller's default affiliation. No resolvable
// company rejects the request.
func ResolveTenant(resolver TenantResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var explicit uuid.UUID
			if header := r.Header.Get("X-Company-ID"); header != "" {
				id, err := uuid.Parse(header)
				if err != nil {
					respond.BadRequest(w, "invalid X-Company-ID header")
					return
				}
				explicit = id
			}

			var userID uuid.UUID
			if id, ok := IdentityFrom(r.Context()); ok {
				userID = id.UserID
			}

			companyID, err := resolver.Resolve(r.Context(), explicit, userID)
			if err != nil {
				respond.Error(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), companyKey, companyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type Authorizer interface {
	Authorize(ctx context.Context, userID uuid.UUID, role string, companyID uuid.UUID, permission string) error
}

// Guard builds the permission middleware for one named permission. Handlers
// attach it per route.
type Guard func(name string) func(http.Handler) http.Handler

// PermissionGuard binds an Authorizer into a Guard.
func PermissionGuard(authz Authorizer) Guard {
	return func(name string) func(http.Handler) http.Handler {
		return RequirePermission(authz, name)
	}
}

// RequirePermission gates a route on one named permission within the active
// company.
func RequirePermission(authz Authorizer, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				respond.Error(w, permission.ErrUnauthenticated)
				return
			}

			companyID, ok := CompanyFrom(r.Context())
			if !ok {
				respond.Error(w, tenant.ErrTenantRequired)
				return
			}

			if err := authz.Authorize(r.Context(), id.UserID, id.Role, companyID, name); err != nil {
				respond.Error(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
