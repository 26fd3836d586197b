package user

import (
	"context"
	"errors"
	"fmt"

	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repository.go -destination=mock_repository.go -package=user

// UserRepository mirrors externally issued identities into the users table.
type UserRepository interface {
	UpsertUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error)
}

// ProfileRepository keeps at most one profile per user.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*dbmysql.Profile, error)
	// Upsert writes profile keyed on user_id, touching only columns when
	// the row already exists, and returns the stored row.
	Upsert(ctx context.Context, profile *dbmysql.Profile, columns []string) (*dbmysql.Profile, error)
}

// identity columns refreshed on every sync
var userSyncColumns = []string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) UpsertUser(ctx context.Context, user *dbmysql.User) error {
	return dbmysql.UpsertByUniqueKey(ctx, r.db, user, []string{"id"}, userSyncColumns)
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFound("user")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*dbmysql.Profile, error) {
	var profile dbmysql.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFound("profile")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *dbmysql.Profile, columns []string) (*dbmysql.Profile, error) {
	if len(columns) > 0 {
		columns = append(columns, "updated_at")
	}
	if err := dbmysql.UpsertByUniqueKey(ctx, r.db, profile, []string{"user_id"}, columns); err != nil {
		return nil, err
	}
	return r.GetByUserID(ctx, profile.UserID)
}
