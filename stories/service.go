package stories

import (
	"context"
	"errors"

	"github.com/prithvi-path/api-go/gamification"
	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/store"
	"github.com/prithvi-path/api-go/types"
)

// ErrStoryNotFound is returned when no location owns the story id.
var ErrStoryNotFound = errors.New("story not found")

// UnlockResult reports the outcome of an unlock attempt. Unlocked is
// true on repeats as well; AlreadyUnlocked distinguishes the no-op.
type UnlockResult struct {
	Story           *models.CulturalStory `json:"story"`
	Unlocked        bool                  `json:"unlocked"`
	AlreadyUnlocked bool                  `json:"alreadyUnlocked"`
	PointsAwarded   int                   `json:"pointsAwarded"`
	NewBadges       []string              `json:"newBadges,omitempty"`
}

// Service owns the single idempotent story unlock path. Both the
// geofence notification acceptance and the check-in story-unlock action
// funnel through here.
type Service struct {
	Store   store.LocationStore
	Ledgers *gamification.Registry
}

func NewService(st store.LocationStore, ledgers *gamification.Registry) *Service {
	return &Service{Store: st, Ledgers: ledgers}
}

// UnlockStory unlocks a story for a user, exactly once, awarding the
// fixed story bonus. Repeats award nothing and still succeed.
func (s *Service) UnlockStory(ctx context.Context, storyID, userID string) (*UnlockResult, error) {
	return s.UnlockStoryWithPoints(ctx, storyID, userID, types.STORY_UNLOCK_POINTS)
}

// UnlockStoryWithPoints is the single unlock path both call sites
// funnel through. The geofence acceptance awards the fixed bonus; the
// check-in path awards the evaluated total, which already includes the
// story-unlock base value plus regional bonuses.
func (s *Service) UnlockStoryWithPoints(ctx context.Context, storyID, userID string, points int) (*UnlockResult, error) {
	loc, err := s.findOwner(ctx, storyID)
	if err != nil {
		return nil, err
	}

	already, awarded, newBadges := s.Ledgers.ForUser(userID).UnlockStory(storyID, loc.ID, points)
	return &UnlockResult{
		Story:           loc.Story,
		Unlocked:        true,
		AlreadyUnlocked: already,
		PointsAwarded:   awarded,
		NewBadges:       newBadges,
	}, nil
}

// StoryByLocation returns the story attached to a location, if any.
func (s *Service) StoryByLocation(ctx context.Context, locationID string) (*models.CulturalStory, error) {
	loc, err := s.Store.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc.Story == nil {
		return nil, ErrStoryNotFound
	}
	return loc.Story, nil
}

// UnlockedStories resolves the user's unlocked story ids to full
// stories, skipping ids the catalog no longer carries.
func (s *Service) UnlockedStories(ctx context.Context, userID string) ([]models.CulturalStory, error) {
	snap := s.Ledgers.ForUser(userID).Snapshot()
	unlocked := make(map[string]struct{}, len(snap.StoriesUnlocked))
	for _, id := range snap.StoriesUnlocked {
		unlocked[id] = struct{}{}
	}

	locations, err := s.Store.ListLocations(ctx, store.LocationFilters{})
	if err != nil {
		return nil, err
	}
	var out []models.CulturalStory
	for _, loc := range locations {
		if loc.Story == nil {
			continue
		}
		if _, ok := unlocked[loc.Story.ID]; ok {
			out = append(out, *loc.Story)
		}
	}
	return out, nil
}

func (s *Service) findOwner(ctx context.Context, storyID string) (*models.EcoLocation, error) {
	locations, err := s.Store.ListLocations(ctx, store.LocationFilters{})
	if err != nil {
		return nil, err
	}
	for i := range locations {
		if locations[i].Story != nil && locations[i].Story.ID == storyID {
			return &locations[i], nil
		}
	}
	return nil, ErrStoryNotFound
}
