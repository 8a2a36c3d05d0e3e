package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/bloglist/internal/ident"
	"github.com/templui/bloglist/internal/model"
	"github.com/templui/bloglist/internal/repository"
	"github.com/templui/bloglist/internal/validation"
)

type BlogService struct {
	repo  repository.BlogRepository
	newID func() string
}

func NewBlogService(repo repository.BlogRepository) *BlogService {
	return &BlogService{
		repo:  repo,
		newID: ident.New,
	}
}

func (s *BlogService) Blogs(ctx context.Context) ([]model.BlogResponse, error) {
	blogs, err := s.repo.Blogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	return model.NewBlogResponses(blogs), nil
}

func (s *BlogService) ByID(ctx context.Context, id string) (*model.BlogResponse, error) {
	id, err := ident.Parse(id)
	if err != nil {
		return nil, err
	}

	blog, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := model.NewBlogResponse(blog)
	return &resp, nil
}

func (s *BlogService) Create(ctx context.Context, in model.BlogInput) (*model.BlogResponse, error) {
	in, err := validation.ValidateBlog(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	blog := &model.Blog{
		ID:        s.newID(),
		Title:     in.Title,
		Author:    in.Author,
		URL:       in.URL,
		Likes:     in.LikesOrDefault(),
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.Create(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	slog.Debug("blog created", "id", blog.ID)

	resp := model.NewBlogResponse(blog)
	return &resp, nil
}

// Update replaces every field of the blog identified by id.
func (s *BlogService) Update(ctx context.Context, id string, in model.BlogInput) (*model.BlogResponse, error) {
	id, err := ident.Parse(id)
	if err != nil {
		return nil, err
	}

	in, err = validation.ValidateBlog(in)
	if err != nil {
		return nil, err
	}

	err = s.repo.Replace(ctx, &model.Blog{
		ID:     id,
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  in.LikesOrDefault(),
	})
	if err != nil {
		return nil, err
	}

	blog, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slog.Debug("blog updated", "id", blog.ID, "version", blog.Version)

	resp := model.NewBlogResponse(blog)
	return &resp, nil
}

// Delete removes the blog if it exists. Missing ids are not an error.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	id, err := ident.Parse(id)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	return nil
}
