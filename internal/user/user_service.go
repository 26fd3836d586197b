package user

import (
	"context"
	"strings"

	"campusconnect/internal/authz"
	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"
)

// ProfileFields is a partial profile update; nil means "leave unchanged".
type ProfileFields struct {
	Bio     *string `json:"bio" validate:"omitempty,max=500"`
	College *string `json:"college" validate:"omitempty,max=255"`
	Course  *string `json:"course" validate:"omitempty,max=255"`
	Year    *string `json:"year" validate:"omitempty,max=64"`
	Role    *string `json:"role" validate:"omitempty,oneof=student admin"`
}

func (f ProfileFields) normalize() ProfileFields {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}
	return ProfileFields{
		Bio:     trim(f.Bio),
		College: trim(f.College),
		Course:  trim(f.Course),
		Year:    trim(f.Year),
		Role:    trim(f.Role),
	}
}

//go:generate mockgen -source=user_service.go -destination=mock_service.go -package=user

type UserService interface {
	AuthorizeEdit(callerID, userID string) error
	GetProfile(ctx context.Context, userID string) (*dbmysql.Profile, error)
	UpsertProfile(ctx context.Context, callerID, userID string, fields ProfileFields) (*dbmysql.Profile, error)
	SyncIdentity(ctx context.Context, id common.Identity) error
}

type userService struct {
	users    UserRepository
	profiles ProfileRepository
	guard    *authz.Guard
}

func NewUserService(users UserRepository, profiles ProfileRepository, guard *authz.Guard) UserService {
	return &userService{users: users, profiles: profiles, guard: guard}
}

// AuthorizeEdit lets the handler refuse a foreign profile before reading
// the request body.
func (s *userService) AuthorizeEdit(callerID, userID string) error {
	return s.guard.AuthorizeProfileEdit(callerID, userID)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dbmysql.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// UpsertProfile creates the caller's profile on first write and merges the
// supplied fields afterwards.
func (s *userService) UpsertProfile(ctx context.Context, callerID, userID string, fields ProfileFields) (*dbmysql.Profile, error) {
	if err := s.guard.AuthorizeProfileEdit(callerID, userID); err != nil {
		return nil, err
	}

	row, columns, err := s.profileRow(ctx, userID, fields)
	if err != nil {
		return nil, err
	}
	return s.profiles.Upsert(ctx, row, columns)
}

func (s *userService) profileRow(ctx context.Context, userID string, fields ProfileFields) (*dbmysql.Profile, []string, error) {
	fields = fields.normalize()
	if err := common.Validate(fields); err != nil {
		return nil, nil, err
	}

	row := &dbmysql.Profile{UserID: userID, Role: string(common.RoleStudent)}
	var columns []string

	texts := []struct {
		column string
		value  *string
		assign func(*string)
	}{
		{"bio", fields.Bio, func(v *string) { row.Bio = v }},
		{"college", fields.College, func(v *string) { row.College = v }},
		{"course", fields.Course, func(v *string) { row.Course = v }},
		{"year", fields.Year, func(v *string) { row.Year = v }},
	}
	for _, f := range texts {
		if f.value == nil {
			continue
		}
		f.assign(f.value)
		columns = append(columns, f.column)
	}

	if fields.Role != nil {
		role := common.Role(*fields.Role)
		if !role.IsValid() {
			return nil, nil, common.NewValidationError("role", "Invalid enum value. Expected 'student' | 'admin'")
		}
		if role == common.RoleAdmin {
			// only an existing admin may keep the role
			admin, err := s.guard.IsAdmin(ctx, userID)
			if err != nil {
				return nil, nil, err
			}
			if !admin {
				return nil, nil, common.ErrForbidden
			}
		}
		row.Role = string(role)
		columns = append(columns, "role")
	}

	return row, columns, nil
}

func (s *userService) SyncIdentity(ctx context.Context, id common.Identity) error {
	return s.users.UpsertUser(ctx, &dbmysql.User{
		ID:              id.UserID,
		Email:           nonEmpty(id.Email),
		FirstName:       nonEmpty(id.FirstName),
		LastName:        nonEmpty(id.LastName),
		ProfileImageURL: nonEmpty(id.ProfileImageURL),
	})
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
