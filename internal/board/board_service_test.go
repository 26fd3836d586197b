package board

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"campusconnect/internal/aggregate"
	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBoardService_CreateResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockBoardRepository(ctrl)
	svc := NewBoardService(mockRepo, NewMockBoardReader(ctrl))
	ctx := context.Background()

	valid := CreateResourceInput{Title: "Notes", Category: "Computer Science", FileURL: "https://files.example.com/notes.pdf"}

	tests := []struct {
		name      string
		in        CreateResourceInput
		setup     func()
		wantField string
		check     func(t *testing.T, r *dbmysql.Resource)
	}{
		{
			name: "without description",
			in:   valid,
			setup: func() {
				mockRepo.EXPECT().CreateResource(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, r *dbmysql.Resource) {
				assert.Nil(t, r.Description)
				assert.Equal(t, "alice", r.AuthorID)
				assert.Equal(t, "Computer Science", r.Category)
			},
		},
		{
			name: "with description",
			in:   CreateResourceInput{Title: "Notes", Category: "CS", FileURL: valid.FileURL, Description: strPtr(" week 1 ")},
			setup: func() {
				mockRepo.EXPECT().CreateResource(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, r *dbmysql.Resource) {
				require.NotNil(t, r.Description)
				assert.Equal(t, "week 1", *r.Description)
			},
		},
		{name: "missing title", in: CreateResourceInput{Category: "CS", FileURL: valid.FileURL}, setup: func() {}, wantField: "title"},
		{name: "missing category", in: CreateResourceInput{Title: "Notes", FileURL: valid.FileURL}, setup: func() {}, wantField: "category"},
		{name: "missing file url", in: CreateResourceInput{Title: "Notes", Category: "CS"}, setup: func() {}, wantField: "fileUrl"},
		{name: "relative file url", in: CreateResourceInput{Title: "Notes", Category: "CS", FileURL: "/notes.pdf"}, setup: func() {}, wantField: "fileUrl"},
		{name: "category too long", in: CreateResourceInput{Title: "Notes", Category: strings.Repeat("c", 65), FileURL: valid.FileURL}, setup: func() {}, wantField: "category"},
		{name: "title reported before category", in: CreateResourceInput{FileURL: "ftp://x"}, setup: func() {}, wantField: "title"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			res, err := svc.CreateResource(ctx, "alice", tc.in)
			if tc.wantField != "" {
				var verr *common.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.wantField, verr.Field)
				return
			}
			require.NoError(t, err)
			tc.check(t, res)
		})
	}
}

func TestBoardService_CreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockBoardRepository(ctrl)
	svc := NewBoardService(mockRepo, NewMockBoardReader(ctrl))
	ctx := context.Background()

	t.Run("parses datetime-local input", func(t *testing.T) {
		mockRepo.EXPECT().CreateEvent(ctx, gomock.Any()).Return(nil)
		ev, err := svc.CreateEvent(ctx, "alice", CreateEventInput{
			Title: "Tech Talk", Description: "AI", Date: "2025-02-15T18:00", Location: "Hall A",
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 2, 15, 18, 0, 0, 0, time.UTC), ev.Date)
	})

	tests := []struct {
		name      string
		in        CreateEventInput
		wantField string
	}{
		{name: "missing title", in: CreateEventInput{Description: "d", Date: "2025-02-15", Location: "x"}, wantField: "title"},
		{name: "missing description", in: CreateEventInput{Title: "t", Date: "2025-02-15", Location: "x"}, wantField: "description"},
		{name: "bad date", in: CreateEventInput{Title: "t", Description: "d", Date: "next friday", Location: "x"}, wantField: "date"},
		{name: "missing location", in: CreateEventInput{Title: "t", Description: "d", Date: "2025-02-15"}, wantField: "location"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEvent(ctx, "alice", tc.in)
			var verr *common.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().CreateEvent(ctx, gomock.Any()).Return(errors.New("db down"))
		_, err := svc.CreateEvent(ctx, "alice", CreateEventInput{Title: "t", Description: "d", Date: "2025-02-15", Location: "x"})
		assert.Error(t, err)
	})
}

func TestBoardService_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockReader := NewMockBoardReader(ctrl)
	svc := NewBoardService(NewMockBoardRepository(ctrl), mockReader)
	ctx := context.Background()

	mockReader.EXPECT().ListResources(ctx, "CS").Return([]aggregate.ResourceView{{}}, nil)
	resources, err := svc.ListResources(ctx, " CS ")
	require.NoError(t, err)
	assert.Len(t, resources, 1)

	mockReader.EXPECT().ListEvents(ctx).Return([]aggregate.EventView{}, nil)
	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}
