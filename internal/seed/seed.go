// Package seed loads the canonical example blogs into an empty or
// development database.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/bloglist/internal/ident"
	"github.com/templui/bloglist/internal/model"
	"github.com/templui/bloglist/internal/repository"
)

// Blogs returns fresh copies of the example blogs, oldest first.
func Blogs() []*model.Blog {
	base := time.Date(2017, time.December, 26, 10, 0, 0, 0, time.UTC)
	return []*model.Blog{
		{
			ID:        ident.MustParse("5a422a851b54a676234d17f7"),
			Title:     "React patterns",
			Author:    "Michael Chan",
			URL:       "https://reactpatterns.com/",
			Likes:     7,
			CreatedAt: base,
			UpdatedAt: base,
		},
		{
			ID:        ident.MustParse("5a422aa71b54a676234d17f8"),
			Title:     "Go To Statement Considered Harmful",
			Author:    "Edsger W. Dijkstra",
			URL:       "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
			Likes:     5,
			CreatedAt: base.Add(time.Minute),
			UpdatedAt: base.Add(time.Minute),
		},
		{
			ID:        ident.MustParse("5a422b3a1b54a676234d17f9"),
			Title:     "Canonical string reduction",
			Author:    "Edsger W. Dijkstra",
			URL:       "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html",
			Likes:     12,
			CreatedAt: base.Add(2 * time.Minute),
			UpdatedAt: base.Add(2 * time.Minute),
		},
	}
}

// Reset deletes every blog and inserts Blogs in a single transaction.
func Reset(ctx context.Context, db *sqlx.DB) ([]*model.Blog, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM blogs`)
	if err != nil {
		return nil, fmt.Errorf("failed to clear blogs: %w", err)
	}

	blogs := Blogs()
	repo := repository.NewBlogRepository(tx)
	for _, b := range blogs {
		err = repo.Create(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("failed to insert blog %s: %w", b.ID, err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit seed: %w", err)
	}

	return blogs, nil
}
