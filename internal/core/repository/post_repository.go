package repository

import (
	"context"

	"litboard/internal/core/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	// Delete reports how many rows were removed so callers can tell
	// "id did not exist" apart from a storage failure.
	Delete(ctx context.Context, id int64) (int64, error)
}
