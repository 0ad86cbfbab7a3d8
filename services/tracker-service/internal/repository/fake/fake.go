// Package fake provides in-memory repositories that behave like the MongoDB ones,
// including mongo.ErrNoDocuments on misses and duplicate key errors on unique fields.
package fake

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository"
)

func duplicateKeyError(collection, index string) error {
	return mongo.WriteError{
		Code:    11000,
		Message: fmt.Sprintf("E11000 duplicate key error collection: %s index: %s_1 dup key", collection, index),
	}
}

type UserRepository struct {
	mu    sync.Mutex
	users map[bson.ObjectID]*model.User

	// Err, when set, is returned by every method.
	Err error
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[bson.ObjectID]*model.User)}
}

func (r *UserRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, duplicateKeyError("users", "email")
		}
		if u.Username == user.Username {
			return nil, duplicateKeyError("users", "username")
		}
	}

	now := time.Now().UTC()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Interests == nil {
		user.Interests = []model.Interest{}
	}
	if user.JobApplications == nil {
		user.JobApplications = []model.JobApplication{}
	}

	r.users[user.ID] = cloneUser(user)

	return user, nil
}

func (r *UserRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	u, ok := r.users[objectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return cloneUser(u), nil
}

func (r *UserRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Email == email })
}

func (r *UserRepository) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Username == username })
}

func (r *UserRepository) find(match func(*model.User) bool) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *UserRepository) UpdateUser(
	_ context.Context,
	id string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	u, ok := r.users[objectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	if params.FirstName == nil && params.LastName == nil && params.Bio == nil &&
		params.ProfilePicture == nil && params.LastLoginAt == nil {
		return nil, repository.ErrNothingToUpdate
	}

	if params.FirstName != nil {
		u.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		u.LastName = *params.LastName
	}
	if params.Bio != nil {
		u.Bio = *params.Bio
	}
	if params.ProfilePicture != nil {
		u.ProfilePicture = *params.ProfilePicture
	}
	if params.LastLoginAt != nil {
		t := params.LastLoginAt.UTC()
		u.LastLoginAt = &t
	}
	u.UpdatedAt = time.Now().UTC()

	return cloneUser(u), nil
}

func (r *UserRepository) UpdateUserAggregate(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	u, ok := r.users[user.ID]
	if !ok {
		return mongo.ErrNoDocuments
	}

	u.Interests = append([]model.Interest{}, user.Interests...)
	u.JobApplications = append([]model.JobApplication{}, user.JobApplications...)
	u.UpdatedAt = time.Now().UTC()
	user.UpdatedAt = u.UpdatedAt

	return nil
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Interests = append([]model.Interest{}, u.Interests...)
	c.JobApplications = append([]model.JobApplication{}, u.JobApplications...)

	return &c
}

type IdentityRepository struct {
	mu         sync.Mutex
	identities []model.Identity

	// CreateErr, when set, is returned by CreateIdentity.
	CreateErr error
}

var _ repository.IdentityRepository = (*IdentityRepository)(nil)

func NewIdentityRepository() *IdentityRepository {
	return &IdentityRepository{}
}

func (r *IdentityRepository) CreateIdentity(_ context.Context, identity *model.Identity) (*model.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CreateErr != nil {
		return nil, r.CreateErr
	}

	for _, i := range r.identities {
		if i.Provider == identity.Provider && i.ProviderID == identity.ProviderID {
			return nil, duplicateKeyError("identities", "provider_provider_id")
		}
	}

	now := time.Now().UTC()
	identity.ID = bson.NewObjectID()
	identity.CreatedAt = now
	identity.UpdatedAt = now
	identity.LastLoginAt = now
	r.identities = append(r.identities, *identity)

	return identity, nil
}

func (r *IdentityRepository) GetIdentitiesByUserID(_ context.Context, userID string) ([]model.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.Identity{}
	for _, i := range r.identities {
		if i.UserID == userID {
			out = append(out, i)
		}
	}

	return out, nil
}

func (r *IdentityRepository) GetIdentityByProvider(
	_ context.Context,
	providerID string,
	provider string,
) (*model.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, i := range r.identities {
		if i.Provider == provider && i.ProviderID == providerID {
			found := i
			return &found, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *IdentityRepository) UpdateLastLogin(_ context.Context, userID string, provider string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for idx := range r.identities {
		if r.identities[idx].UserID == userID && r.identities[idx].Provider == provider {
			r.identities[idx].LastLoginAt = now
			r.identities[idx].UpdatedAt = now
		}
	}

	return nil
}

// OpportunityRepository serves fixed documents per collection. A collection absent from
// Collections does not exist.
type OpportunityRepository struct {
	Collections map[string][]model.Opportunity
	// Errs makes FindAll fail for the named collections.
	Errs map[string]error
}

var _ repository.OpportunityRepository = (*OpportunityRepository)(nil)

func (r *OpportunityRepository) FindAll(_ context.Context, collection string) ([]model.Opportunity, error) {
	if err, ok := r.Errs[collection]; ok {
		return nil, err
	}

	return append([]model.Opportunity{}, r.Collections[collection]...), nil
}

func (r *OpportunityRepository) CollectionExists(_ context.Context, collection string) (bool, error) {
	_, ok := r.Collections[collection]
	return ok, nil
}
