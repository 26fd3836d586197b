package authz

import (
	"context"
	"errors"
	"fmt"

	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"
)

//go:generate mockgen -source=guard.go -destination=mock_guard.go -package=authz

type ProfileFinder interface {
	GetByUserID(ctx context.Context, userID string) (*dbmysql.Profile, error)
}

// Guard decides ownership and role questions. It never loads the target
// entity itself, so callers check existence first and a missing target
// stays a 404 whoever asks.
type Guard struct {
	profiles ProfileFinder
}

func NewGuard(profiles ProfileFinder) *Guard {
	return &Guard{profiles: profiles}
}

// AuthorizeProfileEdit allows a caller to edit only their own profile.
func (g *Guard) AuthorizeProfileEdit(callerID, userID string) error {
	if callerID == "" {
		return common.ErrUnauthenticated
	}
	if callerID != userID {
		return common.ErrForbidden
	}
	return nil
}

// AuthorizePostDelete allows the post's author or any admin.
func (g *Guard) AuthorizePostDelete(ctx context.Context, callerID string, post *dbmysql.Post) error {
	if callerID == "" {
		return common.ErrUnauthenticated
	}
	if post.AuthorID == callerID {
		return nil
	}

	admin, err := g.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}
	if !admin {
		return common.ErrForbidden
	}
	return nil
}

// IsAdmin reports whether userID's profile carries the admin role. No
// profile means a student.
func (g *Guard) IsAdmin(ctx context.Context, userID string) (bool, error) {
	profile, err := g.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, common.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load caller profile: %w", err)
	}
	return common.Role(profile.Role) == common.RoleAdmin, nil
}
