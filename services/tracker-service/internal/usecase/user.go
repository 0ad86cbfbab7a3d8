package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

func getUser(ctx context.Context, userRepo repository.UserRepository, userID string) (*model.User, error) {
	user, err := userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

func saveAggregate(ctx context.Context, userRepo repository.UserRepository, user *model.User) error {
	if err := userRepo.UpdateUserAggregate(ctx, user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	return nil
}
