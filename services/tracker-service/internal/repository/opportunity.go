package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
)

// Collections filled by the external ingestion pipelines.
const (
	OpenHackathonCollection     = "open_hackathons"
	ClosedHackathonCollection   = "closed_hackathons"
	UpcomingHackathonCollection = "upcoming_hackathons"
	ContestCollection           = "clist_contests"
	JobCollection               = "indeedjobs"
)

// HackathonCollections maps each hackathon category to its source collection.
var HackathonCollections = map[model.HackathonCategory]string{
	model.HackathonCategoryOpen:     OpenHackathonCollection,
	model.HackathonCategoryClosed:   ClosedHackathonCollection,
	model.HackathonCategoryUpcoming: UpcomingHackathonCollection,
}

// OpportunityRepository reads ingested opportunity records. It never writes.
type OpportunityRepository interface {
	// FindAll returns every document of collection in natural order.
	FindAll(ctx context.Context, collection string) ([]model.Opportunity, error)
	CollectionExists(ctx context.Context, collection string) (bool, error)
}

type opportunityMongoRepository struct {
	db *mongo.Database
}

func NewOpportunityMongoRepository(db *mongo.Database) OpportunityRepository {
	return &opportunityMongoRepository{db: db}
}

func (r *opportunityMongoRepository) FindAll(ctx context.Context, collection string) ([]model.Opportunity, error) {
	cursor, err := r.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	opportunities := []model.Opportunity{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		opportunities = append(opportunities, model.Opportunity(doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return opportunities, nil
}

func (r *opportunityMongoRepository) CollectionExists(ctx context.Context, collection string) (bool, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: collection}})
	if err != nil {
		return false, err
	}

	return len(names) > 0, nil
}
