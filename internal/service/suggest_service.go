package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"wardrobe/internal/metrics"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

// SuggestService picks one of the user's clothes at random, optionally
// narrowed by filter criteria.
type SuggestService interface {
	// PickRandom draws uniformly from the filtered candidate set. An empty
	// set yields (nil, nil); whether that means "no items at all" or
	// "nothing matched" is the caller's distinction to make.
	PickRandom(ctx context.Context, user *model.User, filter ClothesFilter) (*model.Clothes, error)
}

type suggestService struct {
	repo    repository.ClothesRepository
	metrics metrics.Recorder
}

// NewSuggestService creates a new suggestion service.
func NewSuggestService(repo repository.ClothesRepository, recorder metrics.Recorder) SuggestService {
	return &suggestService{
		repo:    repo,
		metrics: recorder,
	}
}

func (s *suggestService) PickRandom(ctx context.Context, user *model.User, filter ClothesFilter) (*model.Clothes, error) {
	items, err := s.repo.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list clothes: %w", err)
	}

	candidates := filter.Apply(items)
	if len(candidates) == 0 {
		s.metrics.RecordSuggestionEmpty()
		return nil, nil
	}

	pick := candidates[rand.IntN(len(candidates))]
	s.metrics.RecordSuggestionServed()
	return &pick, nil
}
