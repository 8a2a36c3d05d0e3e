package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/bloglist/internal/ident"
	"github.com/templui/bloglist/internal/model"
	"github.com/templui/bloglist/internal/repository"
	"github.com/templui/bloglist/internal/testutil"
	"github.com/templui/bloglist/internal/validation"
)

func newBlogService(t *testing.T) (*BlogService, []*model.Blog) {
	database := testutil.NewDB(t)
	seeded := testutil.SeedBlogs(t, database)
	return NewBlogService(repository.NewBlogRepository(database)), seeded
}

func intPtr(i int) *int { return &i }

func TestCreateAssignsIDAndDefaultsLikes(t *testing.T) {
	svc, _ := newBlogService(t)
	svc.newID = func() string { return "0123456789abcdef01234567" }
	ctx := context.Background()

	created, err := svc.Create(ctx, model.BlogInput{
		Title:  "TDD harms architecture",
		Author: "Robert C. Martin",
		URL:    "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html",
	})
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef01234567", created.ID)
	assert.Equal(t, 0, created.Likes)

	blogs, err := svc.Blogs(ctx)
	require.NoError(t, err)
	assert.Len(t, blogs, 4)
}

func TestCreateGeneratesParseableID(t *testing.T) {
	svc, _ := newBlogService(t)

	created, err := svc.Create(context.Background(), model.BlogInput{
		Title:  "t",
		Author: "a",
		URL:    "https://example.com/",
		Likes:  intPtr(3),
	})
	require.NoError(t, err)

	_, err = ident.Parse(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, created.Likes)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, _ := newBlogService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, model.BlogInput{Author: "a", URL: "https://example.com/"})

	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "title", verr.Field)

	blogs, err := svc.Blogs(ctx)
	require.NoError(t, err)
	assert.Len(t, blogs, 3)
}

func TestByID(t *testing.T) {
	svc, seeded := newBlogService(t)
	ctx := context.Background()

	got, err := svc.ByID(ctx, seeded[2].ID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Likes)

	_, err = svc.ByID(ctx, "bad")
	assert.ErrorIs(t, err, ident.ErrMalformedID)

	_, err = svc.ByID(ctx, "ffffffffffffffffffffffff")
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)
}

func TestUpdate(t *testing.T) {
	svc, seeded := newBlogService(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, seeded[0].ID, model.BlogInput{
		Title:  "title",
		Author: "author",
		URL:    "https://fullstackopen.com/en/part4/",
		Likes:  intPtr(67),
	})
	require.NoError(t, err)

	assert.Equal(t, model.BlogResponse{
		ID:     seeded[0].ID,
		Title:  "title",
		Author: "author",
		URL:    "https://fullstackopen.com/en/part4/",
		Likes:  67,
	}, *updated)
}

func TestUpdateErrors(t *testing.T) {
	svc, seeded := newBlogService(t)
	ctx := context.Background()
	valid := model.BlogInput{Title: "t", Author: "a", URL: "https://example.com/"}

	_, err := svc.Update(ctx, "ffffffffffffffffffffffff", valid)
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)

	_, err = svc.Update(ctx, "not-an-id", valid)
	assert.ErrorIs(t, err, ident.ErrMalformedID)

	_, err = svc.Update(ctx, seeded[0].ID, model.BlogInput{Title: "t", Author: "a"})
	var verr *validation.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestDelete(t *testing.T) {
	svc, seeded := newBlogService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, seeded[0].ID))
	require.NoError(t, svc.Delete(ctx, seeded[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, "123"), ident.ErrMalformedID)

	blogs, err := svc.Blogs(ctx)
	require.NoError(t, err)
	assert.Len(t, blogs, 2)
}
