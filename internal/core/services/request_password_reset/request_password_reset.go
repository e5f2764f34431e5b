package requestpasswordreset

import (
	"context"
	"errors"
	c "passport/internal/core/domain/common"
	"passport/internal/core/domain/email"
	e "passport/internal/core/domain/errors"
	"passport/internal/core/domain/logging"
	"passport/internal/core/domain/preferences"
	"passport/internal/core/domain/user"
	"passport/internal/core/services"
	"time"

	"github.com/golang-module/carbon/v2"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "request-password-reset::" + string(i.Email)
}

type Result struct {
	Code user.ResetCode
}

type service struct {
	log                logging.Logger
	userRepository     user.UserRepository
	resetCodeGenerator user.ResetCodeGenerator
	preferences        preferences.Preferences
	emailSender        email.Sender
	now                func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	resetCodeGenerator user.ResetCodeGenerator,
	prefs preferences.Preferences,
	emailSender email.Sender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if resetCodeGenerator == nil {
		panic(e.NewNilArgumentError("resetCodeGenerator"))
	}
	if prefs == nil {
		panic(e.NewNilArgumentError("prefs"))
	}
	if emailSender == nil {
		panic(e.NewNilArgumentError("emailSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		userRepository:     userRepository,
		resetCodeGenerator: resetCodeGenerator,
		preferences:        prefs,
		emailSender:        emailSender,
		now:                now,
	}
}

// Run starts a password reset for the account matching the email.
// An unknown email is swallowed: the caller gets the same result
// either way, so account existence cannot be probed here. A repeated
// request overwrites any pending code unconditionally.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "Password reset requested for unknown email.")
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset request.",
			logging.Entry("err", err),
		)
		return result, err
	}

	code := s.resetCodeGenerator.GenerateResetCode()
	timeout := s.now().Add(user.ResetCodeValidFor)
	err = s.userRepository.SetResetCode(ctx, u.ID, code, timeout)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not persist reset code.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	subject, err := s.preferences.Get(ctx, preferences.KeyPasswordResetSubject)
	if err != nil {
		s.log.Error(ctx, "Could not resolve reset email subject.", logging.Entry("err", err))
		return result, err
	}
	body, err := s.preferences.Get(ctx, preferences.KeyPasswordResetBody)
	if err != nil {
		s.log.Error(ctx, "Could not resolve reset email body.", logging.Entry("err", err))
		return result, err
	}

	err = s.emailSender.Send(ctx, email.Message{
		To:          string(u.Email.Value),
		DisplayName: u.Name,
		Subject:     subject,
		Body:        body,
		Params: map[string]string{
			"code":    string(code),
			"name":    u.Name,
			"expires": carbon.Time2Carbon(timeout).ToDayDateTimeString(),
		},
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send reset code email.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset code has been sent.",
		logging.Entry("userId", u.ID),
	)
	return Result{Code: code}, nil
}
