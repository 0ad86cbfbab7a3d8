package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
)

// IdentityRepository defines the interface for identity-related database operations.
type IdentityRepository interface {
	CreateIdentity(ctx context.Context, identity *model.Identity) (*model.Identity, error)
	GetIdentitiesByUserID(ctx context.Context, userID string) ([]model.Identity, error)
	GetIdentityByProvider(ctx context.Context, providerID string, provider string) (*model.Identity, error)
	UpdateLastLogin(ctx context.Context, userID string, provider string) error
}

const identityCollection = "identities"

type identityMongoRepository struct {
	db *mongo.Database
}

func NewIdentityMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) IdentityRepository {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "provider", Value: 1}, {Key: "provider_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
	}

	if _, err := db.Collection(identityCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Fatal().Err(err).Msg("failed to create identity indexes")
	}

	return &identityMongoRepository{db: db}
}

func (r *identityMongoRepository) CreateIdentity(
	ctx context.Context,
	identity *model.Identity,
) (*model.Identity, error) {
	now := time.Now().UTC()
	identity.CreatedAt = now
	identity.UpdatedAt = now
	identity.LastLoginAt = now

	result, err := r.db.Collection(identityCollection).InsertOne(ctx, identity)
	if err != nil {
		return nil, err
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}
	identity.ID = objectID

	return identity, nil
}

func (r *identityMongoRepository) GetIdentitiesByUserID(ctx context.Context, userID string) ([]model.Identity, error) {
	cursor, err := r.db.Collection(identityCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	identities := []model.Identity{}
	if err := cursor.All(ctx, &identities); err != nil {
		return nil, err
	}

	return identities, nil
}

func (r *identityMongoRepository) GetIdentityByProvider(
	ctx context.Context,
	providerID string,
	provider string,
) (*model.Identity, error) {
	result := r.db.Collection(identityCollection).FindOne(ctx, bson.M{
		"provider_id": providerID,
		"provider":    provider,
	})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var identity model.Identity
	if err := result.Decode(&identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

func (r *identityMongoRepository) UpdateLastLogin(ctx context.Context, userID string, provider string) error {
	now := time.Now().UTC()
	_, err := r.db.Collection(identityCollection).UpdateOne(
		ctx,
		bson.M{"user_id": userID, "provider": provider},
		bson.M{"$set": bson.M{"last_login_at": now, "updated_at": now}},
	)
	return err
}
