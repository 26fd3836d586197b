package board

import (
	"context"
	"testing"
	"time"

	"campusconnect/internal/aggregate"
	"campusconnect/internal/dbmysql/dbmysqltest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_EndToEndOnSQLite(t *testing.T) {
	db := dbmysqltest.NewSQLite(t)
	dbmysqltest.SeedUser(t, db, "alice", "Alice", "Smith")
	svc := NewBoardService(NewBoardRepository(db), aggregate.NewReader(db))
	ctx := context.Background()

	_, err := svc.CreateResource(ctx, "alice", CreateResourceInput{Title: "A", Category: "CS", FileURL: "https://x.example.com/a.pdf"})
	require.NoError(t, err)
	_, err = svc.CreateResource(ctx, "alice", CreateResourceInput{Title: "B", Category: "Math", FileURL: "https://x.example.com/b.pdf"})
	require.NoError(t, err)

	resources, err := svc.ListResources(ctx, "CS")
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "A", resources[0].Title)
	require.NotNil(t, resources[0].Author.FirstName)
	assert.Equal(t, "Alice", *resources[0].Author.FirstName)

	all, err := svc.ListResources(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// created in the opposite order of their scheduled dates
	for _, date := range []string{"2025-01-10", "2025-03-01", "2025-02-01"} {
		_, err := svc.CreateEvent(ctx, "alice", CreateEventInput{Title: date, Description: "d", Date: date, Location: "Hall"})
		require.NoError(t, err)
	}

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Date.After(events[i-1].Date))
	}
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), events[0].Date.UTC())
}
