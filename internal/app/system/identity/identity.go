// Package identity resolves the caller's role and premium standing from the
// email the client presents. There is no session layer: the frontend
// authenticates with its own provider and sends the signed-in email with each
// request, so every authorization decision routes through this resolver
// rather than trusting a role claim off the wire.
package identity

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hridoylabs/lessonhub/internal/app/store/users"
	"github.com/hridoylabs/lessonhub/internal/app/system/normalize"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// ErrUnauthorized means no identity was presented at all.
var ErrUnauthorized = errors.New("unauthorized access")

// ErrForbidden means the identity was resolved but lacks the required role.
var ErrForbidden = errors.New("forbidden access")

// Identity is the resolved standing of a caller.
type Identity struct {
	Role    string
	Premium bool
}

// Resolver answers role and premium questions about an email.
type Resolver struct {
	users               *userstore.Store
	bootstrapAdminEmail string
}

// NewResolver builds a resolver. bootstrapAdminEmail names the one account
// that is treated as admin even before its user record exists, so a fresh
// deployment is never locked out of the admin surface.
func NewResolver(users *userstore.Store, bootstrapAdminEmail string) *Resolver {
	return &Resolver{
		users:               users,
		bootstrapAdminEmail: normalize.Email(bootstrapAdminEmail),
	}
}

// Resolve returns the role and premium standing for email. Unknown emails
// resolve to a plain non-premium user; lookups never create records.
func (r *Resolver) Resolve(ctx context.Context, email string) (Identity, error) {
	email = normalize.Email(email)
	if email == "" {
		return Identity{Role: "user"}, nil
	}

	u, err := r.users.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		role := "user"
		if r.isBootstrapAdmin(email) {
			role = "admin"
		}
		return Identity{Role: role}, nil
	}
	if err != nil {
		return Identity{}, err
	}

	role := u.Role
	if role == "" {
		role = "user"
	}
	if r.isBootstrapAdmin(email) {
		role = "admin"
	}
	return Identity{Role: role, Premium: u.Premium}, nil
}

// RequireAdmin gates the admin surface. Empty email is ErrUnauthorized; a
// resolved non-admin is ErrForbidden. The bootstrap admin passes even when
// its user record has a lesser stored role.
func (r *Resolver) RequireAdmin(ctx context.Context, email string) error {
	email = normalize.Email(email)
	if email == "" {
		return ErrUnauthorized
	}

	id, err := r.Resolve(ctx, email)
	if err != nil {
		return err
	}
	if id.Role != "admin" {
		return ErrForbidden
	}
	return nil
}

// EnsureBootstrapAdmin creates (or promotes) the configured bootstrap admin
// account so it exists as a real record. Called once at startup; a blank
// configured email disables the bootstrap entirely.
func (r *Resolver) EnsureBootstrapAdmin(ctx context.Context) error {
	if r.bootstrapAdminEmail == "" {
		return nil
	}

	u, err := r.users.GetByEmail(ctx, r.bootstrapAdminEmail)
	if errors.Is(err, mongo.ErrNoDocuments) {
		_, err := r.users.Create(ctx, models.User{
			Email: r.bootstrapAdminEmail,
			Name:  "Administrator",
			Role:  "admin",
		})
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			return nil
		}
		return err
	}
	if err != nil {
		return err
	}

	if u.Role != "admin" {
		_, err := r.users.UpdateRolePremium(ctx, u.ID, "admin", u.Premium)
		return err
	}
	return nil
}

func (r *Resolver) isBootstrapAdmin(email string) bool {
	return r.bootstrapAdminEmail != "" && strings.EqualFold(email, r.bootstrapAdminEmail)
}
