package category

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidName = errors.New("category name is required")

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a category name.
func Slugify(name string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) Create(ctx context.Context, c Category) (Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return Category{}, ErrInvalidName
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return s.repo.Create(ctx, c)
}
