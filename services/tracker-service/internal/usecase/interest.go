package usecase

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository"
)

// InterestUsecase manages a user's bookmarked opportunities.
type InterestUsecase interface {
	// ToggleInterest removes the interest if the user already has it, otherwise adds it.
	// It reports whether the user is interested afterwards.
	ToggleInterest(ctx context.Context, userID string, params ToggleInterestParams) (bool, error)
	ListInterests(ctx context.Context, userID string) ([]model.Interest, error)
	IsInterested(ctx context.Context, userID string, key model.InterestKey) (bool, error)
}

// ToggleInterestParams defines the parameters for toggling an interest.
// Only OpportunityID and OpportunityType take part in matching.
type ToggleInterestParams struct {
	OpportunityID   string
	OpportunityType model.OpportunityType
	OpportunityName string
	Platform        string
	Link            string
	Deadline        *time.Time
}

type interestUsecase struct {
	userRepo repository.UserRepository
}

func NewInterestUsecase(userRepo repository.UserRepository) InterestUsecase {
	return &interestUsecase{userRepo: userRepo}
}

func (u *interestUsecase) ToggleInterest(ctx context.Context, userID string, params ToggleInterestParams) (bool, error) {
	user, err := getUser(ctx, u.userRepo, userID)
	if err != nil {
		return false, err
	}

	interests := user.InterestSet()
	key := model.InterestKey{OpportunityID: params.OpportunityID, OpportunityType: params.OpportunityType}

	_, removed := interests.Remove(key)
	if !removed {
		platform := strings.TrimSpace(params.Platform)
		if platform == "" {
			platform = model.DefaultPlatform
		}

		interests.Add(model.Interest{
			ID:              bson.NewObjectID(),
			OpportunityID:   params.OpportunityID,
			OpportunityType: params.OpportunityType,
			OpportunityName: params.OpportunityName,
			Platform:        platform,
			Link:            params.Link,
			Deadline:        params.Deadline,
			AddedAt:         time.Now().UTC(),
		})
	}

	user.Interests = interests.Items()
	if err := saveAggregate(ctx, u.userRepo, user); err != nil {
		return false, err
	}

	return !removed, nil
}

func (u *interestUsecase) ListInterests(ctx context.Context, userID string) ([]model.Interest, error) {
	user, err := getUser(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	return user.InterestSet().Items(), nil
}

func (u *interestUsecase) IsInterested(ctx context.Context, userID string, key model.InterestKey) (bool, error) {
	user, err := getUser(ctx, u.userRepo, userID)
	if err != nil {
		return false, err
	}

	return user.InterestSet().Contains(key), nil
}
