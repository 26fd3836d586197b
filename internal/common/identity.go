package common

import (
	"context"
	"strings"
)

// Identity is what the external auth collaborator vouches for on every
// gated request.
type Identity struct {
	UserID          string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

func (i Identity) DisplayName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// IdentitySyncer mirrors an identity into local storage so author joins resolve.
type IdentitySyncer interface {
	SyncIdentity(ctx context.Context, id Identity) error
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.UserID != ""
}
