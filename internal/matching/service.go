// Package matching assigns categories to imported statement rows. Bank
// descriptions repeat ("COMPRA SUPERMERCADO LIDER" shows up every week), so
// the owner teaches a pattern once and later imports categorize themselves.
package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("invalid mapping")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	FindCategory(ctx context.Context, ownerID uuid.UUID, description string) (string, error)
	CreateMapping(ctx context.Context, ownerID uuid.UUID, pattern, category string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the category mapped to the given statement description, or
// an empty string when no pattern matches.
func (s *Service) Suggest(ctx context.Context, ownerID uuid.UUID, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", nil
	}

	return s.repo.FindCategory(ctx, ownerID, description)
}

// Learn remembers that descriptions containing pattern belong to category.
func (s *Service) Learn(ctx context.Context, ownerID uuid.UUID, pattern, category string) error {
	pattern = strings.TrimSpace(pattern)
	category = strings.TrimSpace(category)

	if pattern == "" {
		return fmt.Errorf("%w: pattern is required", ErrValidation)
	}

	if category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}

	return s.repo.CreateMapping(ctx, ownerID, pattern, category)
}
