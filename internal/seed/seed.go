// Package seed loads the demo dataset into an empty store.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"

	"gorm.io/gorm"
)

const DemoUserID = "demo-student"

// DemoIdentity is the identity the demo rows are authored by.
var DemoIdentity = common.Identity{
	UserID:          DemoUserID,
	Email:           "demo@campusconnect.com",
	FirstName:       "Demo",
	LastName:        "Student",
	ProfileImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
}

func strPtr(s string) *string { return &s }

// Run inserts the demo rows when the users table is empty. It reports whether
// anything was written.
func Run(ctx context.Context, db *gorm.DB) (bool, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&dbmysql.User{}).Count(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to check users: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	log.Println("Seeding database...")
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows := []interface{}{
			&dbmysql.User{
				ID:              DemoIdentity.UserID,
				Email:           strPtr(DemoIdentity.Email),
				FirstName:       strPtr(DemoIdentity.FirstName),
				LastName:        strPtr(DemoIdentity.LastName),
				ProfileImageURL: strPtr(DemoIdentity.ProfileImageURL),
			},
			&dbmysql.Profile{
				UserID:  DemoUserID,
				Bio:     strPtr("Computer Science Student | Loves Coding"),
				College: strPtr("Replit University"),
				Course:  strPtr("B.Tech CS"),
				Year:    strPtr("3rd Year"),
				Role:    string(common.RoleStudent),
			},
			&dbmysql.Post{
				AuthorID:  DemoUserID,
				Content:   "Excited for the upcoming Hackathon! 🚀 #Events",
				Type:      common.PostTypeText.String(),
				MediaURLs: []string{},
				Tags:      []string{"Events", "Hackathon"},
			},
			&dbmysql.Post{
				AuthorID:  DemoUserID,
				Content:   "Check out these cool notes on React Hooks.",
				Type:      common.PostTypeLink.String(),
				MediaURLs: []string{"https://react.dev"},
				Tags:      []string{"React", "Notes"},
			},
			&dbmysql.Resource{
				AuthorID:    DemoUserID,
				Title:       "Data Structures Notes",
				Description: strPtr("Comprehensive notes for DSA."),
				Category:    "Notes",
				FileURL:     "https://example.com/dsa-notes.pdf",
			},
			&dbmysql.Event{
				AuthorID:    DemoUserID,
				Title:       "Tech Fest 2025",
				Description: "Annual tech festival of Replit University.",
				Date:        time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
				Location:    "Main Auditorium",
			},
		}
		for _, row := range rows {
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to seed %T: %w", row, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Println("Database seeded successfully.")
	return true, nil
}
