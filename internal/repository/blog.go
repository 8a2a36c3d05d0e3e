package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/bloglist/internal/model"
)

var (
	ErrBlogNotFound = errors.New("blog not found")
)

type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	ByID(ctx context.Context, id string) (*model.Blog, error)
	Blogs(ctx context.Context) ([]*model.Blog, error)
	Replace(ctx context.Context, blog *model.Blog) error
	Delete(ctx context.Context, id string) error
}

type blogRepository struct {
	db sqlx.ExtContext
}

// NewBlogRepository accepts a *sqlx.DB or a *sqlx.Tx.
func NewBlogRepository(db sqlx.ExtContext) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `INSERT INTO blogs (id, title, author, url, likes, version, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		blog.ID,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.Version,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	return err
}

func (r *blogRepository) ByID(ctx context.Context, id string) (*model.Blog, error) {
	blog := &model.Blog{}
	query := `SELECT * FROM blogs WHERE id = $1`

	err := sqlx.GetContext(ctx, r.db, blog, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}

	return blog, nil
}

func (r *blogRepository) Blogs(ctx context.Context) ([]*model.Blog, error) {
	blogs := []*model.Blog{}
	query := `SELECT * FROM blogs ORDER BY created_at ASC, id ASC`

	err := sqlx.SelectContext(ctx, r.db, &blogs, query)
	if err != nil {
		return nil, err
	}

	return blogs, nil
}

// Replace overwrites every user-editable field and bumps the version.
func (r *blogRepository) Replace(ctx context.Context, blog *model.Blog) error {
	now := time.Now().UTC()
	query := `UPDATE blogs
	          SET title = $1, author = $2, url = $3, likes = $4, version = version + 1, updated_at = $5
	          WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		now,
		blog.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrBlogNotFound
	}

	return nil
}

// Delete removes the blog if present. Deleting a missing id is not an error.
func (r *blogRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM blogs WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
