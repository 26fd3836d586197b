package board

import (
	"context"
	"strings"

	"campusconnect/internal/aggregate"
	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"
)

// Fields are declared in the order they are reported when several are invalid.
type CreateResourceInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Category    string  `json:"category" validate:"required,max=64"`
	FileURL     string  `json:"fileUrl" validate:"required,http_url"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

func (in CreateResourceInput) normalize() CreateResourceInput {
	out := CreateResourceInput{
		Title:    strings.TrimSpace(in.Title),
		Category: strings.TrimSpace(in.Category),
		FileURL:  strings.TrimSpace(in.FileURL),
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) != "" {
		d := strings.TrimSpace(*in.Description)
		out.Description = &d
	}
	return out
}

type CreateEventInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=5000"`
	Date        string `json:"date" validate:"required,timestamp"`
	Location    string `json:"location" validate:"required,max=255"`
}

func (in CreateEventInput) normalize() CreateEventInput {
	return CreateEventInput{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        strings.TrimSpace(in.Date),
		Location:    strings.TrimSpace(in.Location),
	}
}

//go:generate mockgen -source=board_service.go -destination=mock_service.go -package=board

type BoardService interface {
	CreateResource(ctx context.Context, authorID string, in CreateResourceInput) (*dbmysql.Resource, error)
	ListResources(ctx context.Context, category string) ([]aggregate.ResourceView, error)
	CreateEvent(ctx context.Context, authorID string, in CreateEventInput) (*dbmysql.Event, error)
	ListEvents(ctx context.Context) ([]aggregate.EventView, error)
}

type boardService struct {
	repo   BoardRepository
	reader BoardReader
}

func NewBoardService(repo BoardRepository, reader BoardReader) BoardService {
	return &boardService{repo: repo, reader: reader}
}

func (s *boardService) CreateResource(ctx context.Context, authorID string, in CreateResourceInput) (*dbmysql.Resource, error) {
	in = in.normalize()
	if err := common.Validate(in); err != nil {
		return nil, err
	}

	resource := &dbmysql.Resource{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		FileURL:     in.FileURL,
		AuthorID:    authorID,
	}
	if err := s.repo.CreateResource(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// ListResources filters by exact category when one is given.
func (s *boardService) ListResources(ctx context.Context, category string) ([]aggregate.ResourceView, error) {
	return s.reader.ListResources(ctx, strings.TrimSpace(category))
}

func (s *boardService) CreateEvent(ctx context.Context, authorID string, in CreateEventInput) (*dbmysql.Event, error) {
	in = in.normalize()
	if err := common.Validate(in); err != nil {
		return nil, err
	}
	date, err := common.ParseTimestamp("date", in.Date)
	if err != nil {
		return nil, err
	}

	event := &dbmysql.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
		Location:    in.Location,
		AuthorID:    authorID,
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents orders by scheduled date, latest first.
func (s *boardService) ListEvents(ctx context.Context) ([]aggregate.EventView, error) {
	return s.reader.ListEvents(ctx)
}
