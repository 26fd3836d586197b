package seed

import (
	"context"
	"testing"

	"campusconnect/internal/aggregate"
	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql/dbmysqltest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	db := dbmysqltest.NewSQLite(t)
	ctx := context.Background()

	seeded, err := Run(ctx, db)
	require.NoError(t, err)
	assert.True(t, seeded)

	reader := aggregate.NewReader(db)
	posts, err := reader.ListPosts(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, DemoUserID, p.Author.ID)
	}

	links, err := reader.ListPosts(ctx, 10, common.PostTypeLink)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, []string{"https://react.dev"}, links[0].MediaURLs)

	resources, err := reader.ListResources(ctx, "Notes")
	require.NoError(t, err)
	assert.Len(t, resources, 1)

	events, err := reader.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	// second run is a no-op
	seeded, err = Run(ctx, db)
	require.NoError(t, err)
	assert.False(t, seeded)

	posts, err = reader.ListPosts(ctx, 10, "")
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
