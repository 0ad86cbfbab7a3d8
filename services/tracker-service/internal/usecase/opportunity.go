package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository"
)

// OpportunityUsecase serves the read-only opportunity feeds.
type OpportunityUsecase interface {
	// ListHackathons returns open, then closed, then upcoming hackathons, each tagged with
	// its category. A failure in any source fails the whole call.
	ListHackathons(ctx context.Context) ([]model.Opportunity, error)
	ListContests(ctx context.Context) ([]model.Opportunity, error)
	// ListJobs returns an empty list when the jobs collection has not been created yet.
	ListJobs(ctx context.Context) ([]model.Opportunity, error)
}

type opportunityUsecase struct {
	opportunityRepo repository.OpportunityRepository
}

func NewOpportunityUsecase(opportunityRepo repository.OpportunityRepository) OpportunityUsecase {
	return &opportunityUsecase{opportunityRepo: opportunityRepo}
}

func (u *opportunityUsecase) ListHackathons(ctx context.Context) ([]model.Opportunity, error) {
	results := make([][]model.Opportunity, len(model.HackathonCategories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range model.HackathonCategories {
		collection := repository.HackathonCollections[category]

		g.Go(func() error {
			docs, err := u.opportunityRepo.FindAll(gctx, collection)
			if err != nil {
				return fmt.Errorf("list %s hackathons: %w", category, err)
			}

			tagged := make([]model.Opportunity, 0, len(docs))
			for _, doc := range docs {
				tagged = append(tagged, doc.WithCategory(category))
			}
			results[i] = tagged

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	hackathons := []model.Opportunity{}
	for _, r := range results {
		hackathons = append(hackathons, r...)
	}

	return hackathons, nil
}

func (u *opportunityUsecase) ListContests(ctx context.Context) ([]model.Opportunity, error) {
	return u.opportunityRepo.FindAll(ctx, repository.ContestCollection)
}

func (u *opportunityUsecase) ListJobs(ctx context.Context) ([]model.Opportunity, error) {
	exists, err := u.opportunityRepo.CollectionExists(ctx, repository.JobCollection)
	if err != nil {
		return nil, err
	}

	if !exists {
		return []model.Opportunity{}, nil
	}

	return u.opportunityRepo.FindAll(ctx, repository.JobCollection)
}
