package services

import (
	"passport/internal/app/deps"
	drl "passport/internal/core/domain/rate_limiter"
	"passport/internal/core/services"
	confirmpasswordreset "passport/internal/core/services/confirm_password_reset"
	issuesession "passport/internal/core/services/issue_session"
	ratelimiting "passport/internal/core/services/rate_limiting"
	requestpasswordreset "passport/internal/core/services/request_password_reset"
)

type Services struct {
	IssueSession         services.Service[issuesession.Input, issuesession.Result]
	RequestPasswordReset services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	ConfirmPasswordReset services.Service[confirmpasswordreset.Input, confirmpasswordreset.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.IssueSession = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		issuesession.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionTokenGenerator,
		),
	)
	s.RequestPasswordReset = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		requestpasswordreset.New(
			deps.Logger,
			deps.UserRepository,
			deps.ResetCodeGenerator,
			deps.Preferences,
			deps.EmailSender,
			deps.Now,
		),
	)
	s.ConfirmPasswordReset = confirmpasswordreset.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)

	return s
}
