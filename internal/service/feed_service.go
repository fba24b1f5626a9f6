package service

import (
	"context"
	"fmt"

	"hrportal/internal/feed"
	"hrportal/internal/model"
	"hrportal/internal/repository"
)

// FeedService assembles the unified request feed across all four kinds.
type FeedService interface {
	// ReviewerFeed returns the division-scoped merged feed for a reviewing
	// viewer (division head or admin), newest first, with per-item actions.
	ReviewerFeed(ctx context.Context, viewer model.ViewerIdentity, filters feed.Filters) ([]feed.Item, error)
	// MyFeed returns the viewer's own submissions across all kinds.
	MyFeed(ctx context.Context, viewer model.ViewerIdentity, filters feed.Filters) ([]feed.Item, error)
}

type feedService struct {
	repo repository.RequestRepository
}

// NewFeedService returns a new instance of FeedService
func NewFeedService(repo repository.RequestRepository) FeedService {
	return &feedService{repo: repo}
}

func (s *feedService) ReviewerFeed(ctx context.Context, viewer model.ViewerIdentity, filters feed.Filters) ([]feed.Item, error) {
	division, all, err := reviewScope(viewer)
	if err != nil {
		return nil, err
	}

	var records []model.Request
	for _, kind := range model.Kinds {
		var batch []model.Request
		if all {
			batch, err = s.repo.ListAll(ctx, kind)
		} else {
			batch, err = s.repo.ListByDivision(ctx, kind, division)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s requests: %w", kind, err)
		}
		records = append(records, batch...)
	}

	return feed.Build(viewer, records, filters), nil
}

func (s *feedService) MyFeed(ctx context.Context, viewer model.ViewerIdentity, filters feed.Filters) ([]feed.Item, error) {
	var records []model.Request
	for _, kind := range model.Kinds {
		batch, err := s.repo.ListByName(ctx, kind, viewer.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s requests: %w", kind, err)
		}
		records = append(records, batch...)
	}
	return feed.Build(viewer, records, filters), nil
}
