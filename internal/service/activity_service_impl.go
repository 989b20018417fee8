package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/repository"
	"github.com/google/uuid"
)

type activityService struct {
	activities repository.ActivityTypeRepo
}

func NewActivityService(activities repository.ActivityTypeRepo) ActivityService {
	return &activityService{activities: activities}
}

func (s *activityService) Create(ctx context.Context, name, emoji string) (*domain.ActivityType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("activity name is required")
	}
	if _, err := s.activities.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("activity %q: %w", name, ErrDuplicateName)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	a := &domain.ActivityType{
		ID:        uuid.New().String(),
		Name:      name,
		Emoji:     strings.TrimSpace(emoji),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) List(ctx context.Context, includeArchived bool) ([]*domain.ActivityType, error) {
	return s.activities.List(ctx, includeArchived)
}

// Resolve finds an activity type by id or case-insensitive name.
func (s *activityService) Resolve(ctx context.Context, ref string) (*domain.ActivityType, error) {
	ref = strings.TrimSpace(ref)
	if a, err := s.activities.GetByID(ctx, ref); err == nil {
		return a, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.activities.GetByName(ctx, ref)
}

func (s *activityService) SetArchived(ctx context.Context, id string, archived bool) error {
	return s.activities.SetArchived(ctx, id, archived)
}
