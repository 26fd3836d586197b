package dbmysql

import "time"

type Resource struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;size:64;not null;index" json:"category"`
	FileURL     string    `gorm:"column:file_url;size:1024;not null" json:"fileUrl"`
	AuthorID    string    `gorm:"column:author_id;size:64;not null" json:"authorId"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Resource) TableName() string {
	return "resources"
}

type Event struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Date        time.Time `gorm:"column:date;not null;index" json:"date"`
	Location    string    `gorm:"column:location;size:255;not null" json:"location"`
	AuthorID    string    `gorm:"column:author_id;size:64;not null" json:"authorId"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Event) TableName() string {
	return "events"
}
