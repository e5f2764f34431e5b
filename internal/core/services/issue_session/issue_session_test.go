package issuesession

import (
	"context"
	c "passport/internal/core/domain/common"
	"passport/internal/core/domain/logging"
	"passport/internal/core/domain/user"
	"passport/internal/core/services"
	"testing"

	"github.com/stretchr/testify/require"
)

const USER_ID = user.ID(42)
const SESSION_TOKEN = "test-session-token"

type suite struct {
	log            *logging.FakeLogger
	userRepo       *user.FakeUserRepository
	tokenGenerator *user.FakeSessionTokenGenerator
}

func setupSuite() *suite {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{{
		ID:           USER_ID,
		Email:        c.NewOptional(c.Email("alice@example.com"), true),
		Name:         "Alice",
		PasswordHash: c.NewOptional(user.PasswordHash("hash"), true),
	}}
	return &suite{
		log:            logging.NewFakeLogger(),
		userRepo:       userRepo,
		tokenGenerator: user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.tokenGenerator)
}

func TestNotAuthenticated(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, user.ErrNotAuthenticated)
	u, ok := suite.userRepo.GetByID(USER_ID)
	assert.True(ok)
	assert.False(u.APIToken.IsPresent)
}

func TestTokenIssuedAndPersisted(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	authenticated, ok := suite.userRepo.GetByID(USER_ID)
	require.True(t, ok)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{User: c.NewOptional(authenticated, true)})

	// Verify ---
	assert := require.New(t)
	assert.NoError(err)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.Token)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.User.APIToken.Value)

	u, ok := suite.userRepo.GetByID(USER_ID)
	assert.True(ok)
	assert.True(u.APIToken.IsPresent)
	assert.Equal(user.SessionToken(SESSION_TOKEN), u.APIToken.Value)
}

func TestPriorTokenOverwritten(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.userRepo.Users[0].APIToken = c.NewOptional(user.SessionToken("stale-token"), true)
	service := suite.createService()
	authenticated, ok := suite.userRepo.GetByID(USER_ID)
	require.True(t, ok)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{User: c.NewOptional(authenticated, true)})

	// Verify ---
	assert := require.New(t)
	assert.NoError(err)
	assert.NotEqual(user.SessionToken("stale-token"), result.Token)

	u, ok := suite.userRepo.GetByID(USER_ID)
	assert.True(ok)
	assert.Equal(user.SessionToken(SESSION_TOKEN), u.APIToken.Value)
}

func TestStoreError(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	authenticated, ok := suite.userRepo.GetByID(USER_ID)
	require.True(t, ok)
	suite.userRepo.ReturnError = true

	// Exercise ---
	_, err := service.Run(context.Background(), Input{User: c.NewOptional(authenticated, true)})

	// Verify ---
	require.Error(t, err)
}
