package requestpasswordreset

import (
	"context"
	c "passport/internal/core/domain/common"
	"passport/internal/core/domain/email"
	"passport/internal/core/domain/logging"
	"passport/internal/core/domain/preferences"
	"passport/internal/core/domain/user"
	"passport/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const USER_ID = user.ID(7)
const USER_EMAIL = "alice@example.com"
const USER_NAME = "Alice"
const RESET_CODE = "dGVzdC1jb2RlMQ=="

var NOW = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

type suite struct {
	log           *logging.FakeLogger
	userRepo      *user.FakeUserRepository
	codeGenerator *user.FakeResetCodeGenerator
	prefs         *preferences.FakePreferences
	emailSender   *email.FakeSender
}

func setupSuite() *suite {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{{
		ID:           USER_ID,
		Email:        c.NewOptional(c.Email(USER_EMAIL), true),
		Name:         USER_NAME,
		PasswordHash: c.NewOptional(user.PasswordHash("hash"), true),
	}}
	return &suite{
		log:           logging.NewFakeLogger(),
		userRepo:      userRepo,
		codeGenerator: user.NewFakeResetCodeGenerator(RESET_CODE),
		prefs: preferences.NewFakePreferences(map[preferences.Key]string{
			preferences.KeyPasswordResetSubject: "Password reset",
			preferences.KeyPasswordResetBody:    "Hello {name}, your code is {code}.",
		}),
		emailSender: email.NewFakeSender(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.codeGenerator, s.prefs, s.emailSender, func() time.Time { return NOW })
}

func TestUnknownEmailIsSwallowed(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail("nobody@example.com")})

	// Verify ---
	assert := require.New(t)
	assert.NoError(err)
	assert.Equal(0, suite.emailSender.SentCount())
	u, ok := suite.userRepo.GetByID(USER_ID)
	assert.True(ok)
	assert.False(u.ResetCode.IsPresent)
	assert.False(u.ResetCodeTimeout.IsPresent)
}

func TestResetCodeSetAndSent(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Email: c.NewEmail(USER_EMAIL)})

	// Verify ---
	assert := require.New(t)
	assert.NoError(err)
	assert.Equal(user.ResetCode(RESET_CODE), result.Code)

	u, ok := suite.userRepo.GetByID(USER_ID)
	assert.True(ok)
	assert.True(u.ResetCode.IsPresent)
	assert.True(u.ResetCodeTimeout.IsPresent)
	assert.Equal(user.ResetCode(RESET_CODE), u.ResetCode.Value)
	assert.Equal(NOW.Add(user.ResetCodeValidFor), u.ResetCodeTimeout.Value)

	assert.Equal(1, suite.emailSender.SentCount())
	msg := suite.emailSender.LastSent()
	assert.Equal(USER_EMAIL, msg.To)
	assert.Equal(USER_NAME, msg.DisplayName)
	assert.Equal("Password reset", msg.Subject)
	assert.Equal(RESET_CODE, msg.Params["code"])
	assert.Equal(USER_NAME, msg.Params["name"])
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail("Alice@Example.COM")})

	// Verify ---
	assert := require.New(t)
	assert.NoError(err)
	assert.Equal(1, suite.emailSender.SentCount())
}

func TestSecondRequestOverwritesFirst(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail(USER_EMAIL)})
	require.NoError(t, err)
	suite.codeGenerator.Code = "bmV3LWNvZGUtMg=="
	_, err = service.Run(context.Background(), Input{Email: c.NewEmail(USER_EMAIL)})

	// Verify ---
	assert := require.New(t)
	assert.NoError(err)
	u, ok := suite.userRepo.GetByID(USER_ID)
	assert.True(ok)
	assert.Equal(user.ResetCode("bmV3LWNvZGUtMg=="), u.ResetCode.Value)
	assert.Equal(2, suite.emailSender.SentCount())
}

func TestStoreError(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.userRepo.ReturnError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail(USER_EMAIL)})

	// Verify ---
	assert := require.New(t)
	assert.Error(err)
	assert.Equal(0, suite.emailSender.SentCount())
}

func TestEmailSendError(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.emailSender.ReturnError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail(USER_EMAIL)})

	// Verify ---
	require.Error(t, err)
}
