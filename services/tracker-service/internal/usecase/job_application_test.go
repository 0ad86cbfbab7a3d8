package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository/fake"
)

var appliedOn = time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

func createParams(jobID string) CreateJobApplicationParams {
	return CreateJobApplicationParams{
		JobID:           jobID,
		JobTitle:        "Backend Engineer",
		Company:         "Acme",
		ApplicationDate: appliedOn,
		Notes:           "referral",
		SourceURL:       "https://jobs.example.com/" + jobID,
	}
}

func TestJobApplicationUsecase_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	repo := fake.NewUserRepository()
	user := seedUser(t, repo, "ada")
	uc := NewJobApplicationUsecase(repo)

	params := createParams("j1")
	params.Notes = ""
	app, err := uc.CreateJobApplication(ctx, user.ID.Hex(), params)
	require.NoError(t, err)

	assert.Equal(t, model.ApplicationStatusApplied, app.Status)
	assert.Empty(t, app.Notes)
	assert.True(t, appliedOn.Equal(app.ApplicationDate))
}

func TestJobApplicationUsecase_CreateDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	repo := fake.NewUserRepository()
	user := seedUser(t, repo, "ada")
	uc := NewJobApplicationUsecase(repo)

	_, err := uc.CreateJobApplication(ctx, user.ID.Hex(), createParams("j1"))
	require.NoError(t, err)

	dup := createParams("j1")
	dup.Company = "Other Corp"
	dup.Notes = "overwritten?"
	_, err = uc.CreateJobApplication(ctx, user.ID.Hex(), dup)
	assert.ErrorIs(t, err, ErrJobApplicationExists)

	apps, err := uc.ListJobApplications(ctx, user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Acme", apps[0].Company)
	assert.Equal(t, "referral", apps[0].Notes)
}

func TestJobApplicationUsecase_UpdateOnlyStatus(t *testing.T) {
	ctx := context.Background()
	repo := fake.NewUserRepository()
	user := seedUser(t, repo, "ada")
	uc := NewJobApplicationUsecase(repo)

	created, err := uc.CreateJobApplication(ctx, user.ID.Hex(), createParams("j1"))
	require.NoError(t, err)

	status := model.ApplicationStatusInterview
	updated, err := uc.UpdateJobApplication(ctx, user.ID.Hex(), "j1", UpdateJobApplicationParams{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, model.ApplicationStatusInterview, updated.Status)
	assert.Equal(t, created.Notes, updated.Notes)
	assert.Equal(t, created.Company, updated.Company)
	assert.Equal(t, created.JobTitle, updated.JobTitle)
	assert.Equal(t, created.SourceURL, updated.SourceURL)
	assert.True(t, created.ApplicationDate.Equal(updated.ApplicationDate))

	apps, err := uc.ListJobApplications(ctx, user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, model.ApplicationStatusInterview, apps[0].Status)
	assert.Equal(t, "referral", apps[0].Notes)
}

func TestJobApplicationUsecase_UpdateDateAndNotes(t *testing.T) {
	ctx := context.Background()
	repo := fake.NewUserRepository()
	user := seedUser(t, repo, "ada")
	uc := NewJobApplicationUsecase(repo)

	_, err := uc.CreateJobApplication(ctx, user.ID.Hex(), createParams("j1"))
	require.NoError(t, err)

	newDate := appliedOn.AddDate(0, 0, 3)
	notes := ""
	updated, err := uc.UpdateJobApplication(ctx, user.ID.Hex(), "j1", UpdateJobApplicationParams{
		ApplicationDate: &newDate,
		Notes:           &notes,
	})
	require.NoError(t, err)

	assert.True(t, newDate.Equal(updated.ApplicationDate))
	assert.Empty(t, updated.Notes)
	assert.Equal(t, model.ApplicationStatusApplied, updated.Status)
}

func TestJobApplicationUsecase_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := fake.NewUserRepository()
	user := seedUser(t, repo, "ada")
	uc := NewJobApplicationUsecase(repo)

	status := model.ApplicationStatusRejected
	_, err := uc.UpdateJobApplication(ctx, user.ID.Hex(), "nope", UpdateJobApplicationParams{Status: &status})
	assert.ErrorIs(t, err, ErrJobApplicationNotFound)
}

func TestJobApplicationUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	repo := fake.NewUserRepository()
	user := seedUser(t, repo, "ada")
	uc := NewJobApplicationUsecase(repo)

	for _, id := range []string{"j1", "j2", "j3"} {
		_, err := uc.CreateJobApplication(ctx, user.ID.Hex(), createParams(id))
		require.NoError(t, err)
	}

	err := uc.DeleteJobApplication(ctx, user.ID.Hex(), "missing")
	assert.ErrorIs(t, err, ErrJobApplicationNotFound)

	apps, err := uc.ListJobApplications(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, apps, 3)

	require.NoError(t, uc.DeleteJobApplication(ctx, user.ID.Hex(), "j2"))

	apps, err = uc.ListJobApplications(ctx, user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "j1", apps[0].JobID)
	assert.Equal(t, "j3", apps[1].JobID)
}

func TestJobApplicationUsecase_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := fake.NewUserRepository()
	ada := seedUser(t, repo, "ada")
	bob := seedUser(t, repo, "bob")
	uc := NewJobApplicationUsecase(repo)

	_, err := uc.CreateJobApplication(ctx, ada.ID.Hex(), createParams("j1"))
	require.NoError(t, err)

	_, err = uc.CreateJobApplication(ctx, bob.ID.Hex(), createParams("j1"))
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteJobApplication(ctx, bob.ID.Hex(), "j2"), ErrJobApplicationNotFound)

	apps, err := uc.ListJobApplications(ctx, ada.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}
