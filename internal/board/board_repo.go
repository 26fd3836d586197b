package board

import (
	"context"
	"fmt"

	"campusconnect/internal/aggregate"
	"campusconnect/internal/dbmysql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=board_repo.go -destination=mock_repository.go -package=board

type BoardRepository interface {
	CreateResource(ctx context.Context, resource *dbmysql.Resource) error
	CreateEvent(ctx context.Context, event *dbmysql.Event) error
}

// BoardReader is satisfied by *aggregate.Reader.
type BoardReader interface {
	ListResources(ctx context.Context, category string) ([]aggregate.ResourceView, error)
	ListEvents(ctx context.Context) ([]aggregate.EventView, error)
}

type boardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) CreateResource(ctx context.Context, resource *dbmysql.Resource) error {
	if err := r.db.WithContext(ctx).Create(resource).Error; err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

func (r *boardRepository) CreateEvent(ctx context.Context, event *dbmysql.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}
