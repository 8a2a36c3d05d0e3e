package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/bloglist/internal/ident"
	"github.com/templui/bloglist/internal/repository"
	"github.com/templui/bloglist/internal/seed"
	"github.com/templui/bloglist/internal/testutil"
)

func TestBlogsHaveValidIDs(t *testing.T) {
	for _, b := range seed.Blogs() {
		_, err := ident.Parse(b.ID)
		assert.NoError(t, err, b.ID)
	}
}

func TestResetReplacesContents(t *testing.T) {
	database := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewBlogRepository(database)

	_, err := seed.Reset(ctx, database)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "5a422a851b54a676234d17f7"))

	_, err = seed.Reset(ctx, database)
	require.NoError(t, err)

	blogs, err := repo.Blogs(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 3)
	assert.Equal(t, "5a422a851b54a676234d17f7", blogs[0].ID)
}
