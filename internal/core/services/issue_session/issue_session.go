package issuesession

import (
	"context"
	"errors"
	c "passport/internal/core/domain/common"
	e "passport/internal/core/domain/errors"
	"passport/internal/core/domain/logging"
	"passport/internal/core/domain/user"
	"passport/internal/core/services"
)

type Input struct {
	User c.Optional[user.User]
}

func (i Input) GetRateLimitKey() string {
	if !i.User.IsPresent || !i.User.Value.Email.IsPresent {
		return "issue-session::anonymous"
	}
	return "issue-session::" + string(i.User.Value.Email.Value)
}

type Result struct {
	Token user.SessionToken
	User  user.User
}

type service struct {
	log                   logging.Logger
	userRepository        user.UserRepository
	sessionTokenGenerator user.SessionTokenGenerator
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	sessionTokenGenerator user.SessionTokenGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if sessionTokenGenerator == nil {
		panic(e.NewNilArgumentError("sessionTokenGenerator"))
	}
	return &service{
		log:                   log,
		userRepository:        userRepository,
		sessionTokenGenerator: sessionTokenGenerator,
	}
}

// Run mints a fresh session token for the already-authenticated user
// and persists it on the user record, overwriting any prior token.
// Credential checks belong to the authentication layer, not here.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !input.User.IsPresent {
		return result, user.ErrNotAuthenticated
	}
	u := input.User.Value

	sessionToken := s.sessionTokenGenerator.GenerateSessionToken()
	err = s.userRepository.SetSessionToken(ctx, u.ID, sessionToken)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not persist session token for user.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	u.APIToken = c.NewOptional(sessionToken, true)
	s.log.Info(
		ctx,
		"Session token issued.",
		logging.Entry("userId", u.ID),
	)
	return Result{Token: sessionToken, User: u}, nil
}
