package dbmysql

import (
	"time"
)

// User mirrors the externally issued identity; ID is never generated here.
type User struct {
	ID              string    `gorm:"primaryKey;column:id;size:64" json:"id"`
	Email           *string   `gorm:"column:email;size:255" json:"email"`
	FirstName       *string   `gorm:"column:first_name;size:255" json:"firstName"`
	LastName        *string   `gorm:"column:last_name;size:255" json:"lastName"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;size:1024" json:"profileImageUrl"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// Profile is one-to-one with User through the unique user_id.
type Profile struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    string    `gorm:"column:user_id;size:64;not null;uniqueIndex:idx_profiles_user_id" json:"userId"`
	Bio       *string   `gorm:"column:bio;type:text" json:"bio"`
	College   *string   `gorm:"column:college;size:255" json:"college"`
	Course    *string   `gorm:"column:course;size:255" json:"course"`
	Year      *string   `gorm:"column:year;size:64" json:"year"`
	Role      string    `gorm:"column:role;size:16;not null;default:student" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}
