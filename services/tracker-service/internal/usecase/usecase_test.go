package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository/fake"
)

func seedUser(t *testing.T, repo *fake.UserRepository, username string) *model.User {
	t.Helper()

	user, err := repo.CreateUser(context.Background(), &model.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)

	return user
}
