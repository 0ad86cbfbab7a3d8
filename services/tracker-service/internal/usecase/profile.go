package usecase

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository"
)

// ProfileUsecase reads and edits the caller's own profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*model.User, error)
}

// UpdateProfileParams defines the optional profile fields. Blank names are ignored;
// a non-nil Bio is always applied, so it can be cleared.
type UpdateProfileParams struct {
	FirstName *string
	LastName  *string
	Bio       *string
}

type profileUsecase struct {
	userRepo repository.UserRepository
}

func NewProfileUsecase(userRepo repository.UserRepository) ProfileUsecase {
	return &profileUsecase{userRepo: userRepo}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	return getUser(ctx, u.userRepo, userID)
}

func (u *profileUsecase) UpdateProfile(
	ctx context.Context,
	userID string,
	params UpdateProfileParams,
) (*model.User, error) {
	update := repository.UpdateUserParams{
		FirstName: nonBlank(params.FirstName),
		LastName:  nonBlank(params.LastName),
	}
	if params.Bio != nil {
		bio := strings.TrimSpace(*params.Bio)
		update.Bio = &bio
	}

	if update.FirstName == nil && update.LastName == nil && update.Bio == nil {
		return getUser(ctx, u.userRepo, userID)
	}

	user, err := u.userRepo.UpdateUser(ctx, userID, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
