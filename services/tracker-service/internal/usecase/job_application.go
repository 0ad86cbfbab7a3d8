package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository"
)

// JobApplicationUsecase manages a user's job applications, keyed by job id.
type JobApplicationUsecase interface {
	CreateJobApplication(
		ctx context.Context,
		userID string,
		params CreateJobApplicationParams,
	) (*model.JobApplication, error)
	ListJobApplications(ctx context.Context, userID string) ([]model.JobApplication, error)
	UpdateJobApplication(
		ctx context.Context,
		userID, jobID string,
		params UpdateJobApplicationParams,
	) (*model.JobApplication, error)
	DeleteJobApplication(ctx context.Context, userID, jobID string) error
}

// CreateJobApplicationParams defines the parameters for tracking a new application.
// An empty Status means applied.
type CreateJobApplicationParams struct {
	JobID           string
	JobTitle        string
	Company         string
	ApplicationDate time.Time
	Notes           string
	Status          model.ApplicationStatus
	SourceURL       string
}

// UpdateJobApplicationParams defines the optional parameters for updating an application.
// Only the fields that are not nil will be updated.
type UpdateJobApplicationParams struct {
	ApplicationDate *time.Time
	Notes           *string
	Status          *model.ApplicationStatus
}

var (
	ErrJobApplicationExists   = errors.New("job application already exists")
	ErrJobApplicationNotFound = errors.New("job application not found")
)

type jobApplicationUsecase struct {
	userRepo repository.UserRepository
}

func NewJobApplicationUsecase(userRepo repository.UserRepository) JobApplicationUsecase {
	return &jobApplicationUsecase{userRepo: userRepo}
}

func (u *jobApplicationUsecase) CreateJobApplication(
	ctx context.Context,
	userID string,
	params CreateJobApplicationParams,
) (*model.JobApplication, error) {
	user, err := getUser(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = model.ApplicationStatusApplied
	}

	application := model.JobApplication{
		ID:              bson.NewObjectID(),
		JobID:           params.JobID,
		JobTitle:        params.JobTitle,
		Company:         params.Company,
		ApplicationDate: params.ApplicationDate.UTC(),
		Notes:           params.Notes,
		Status:          status,
		SourceURL:       params.SourceURL,
		AddedAt:         time.Now().UTC(),
	}

	applications := user.JobApplicationSet()
	if !applications.Add(application) {
		return nil, ErrJobApplicationExists
	}

	user.JobApplications = applications.Items()
	if err := saveAggregate(ctx, u.userRepo, user); err != nil {
		return nil, err
	}

	return &application, nil
}

func (u *jobApplicationUsecase) ListJobApplications(ctx context.Context, userID string) ([]model.JobApplication, error) {
	user, err := getUser(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	return user.JobApplicationSet().Items(), nil
}

func (u *jobApplicationUsecase) UpdateJobApplication(
	ctx context.Context,
	userID, jobID string,
	params UpdateJobApplicationParams,
) (*model.JobApplication, error) {
	user, err := getUser(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	applications := user.JobApplicationSet()
	application, ok := applications.Get(jobID)
	if !ok {
		return nil, ErrJobApplicationNotFound
	}

	if params.ApplicationDate != nil {
		application.ApplicationDate = params.ApplicationDate.UTC()
	}
	if params.Notes != nil {
		application.Notes = *params.Notes
	}
	if params.Status != nil {
		application.Status = *params.Status
	}

	applications.Replace(application)

	user.JobApplications = applications.Items()
	if err := saveAggregate(ctx, u.userRepo, user); err != nil {
		return nil, err
	}

	return &application, nil
}

func (u *jobApplicationUsecase) DeleteJobApplication(ctx context.Context, userID, jobID string) error {
	user, err := getUser(ctx, u.userRepo, userID)
	if err != nil {
		return err
	}

	applications := user.JobApplicationSet()
	if _, ok := applications.Remove(jobID); !ok {
		return ErrJobApplicationNotFound
	}

	user.JobApplications = applications.Items()

	return saveAggregate(ctx, u.userRepo, user)
}
