package confirmpasswordreset

import (
	"context"
	"errors"
	c "passport/internal/core/domain/common"
	e "passport/internal/core/domain/errors"
	"passport/internal/core/domain/logging"
	"passport/internal/core/domain/user"
	"passport/internal/core/services"
	"time"
)

type Input struct {
	Email       c.Email
	Code        user.ResetCode
	NewPassword user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "confirm-password-reset::" + string(i.Email)
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

// Run redeems a pending reset code. On success the password hash is
// replaced and the code and its timeout are cleared in the same store
// mutation; on any failure nothing changes. The failure reason (wrong
// code vs. expired) is not distinguished for the caller.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "Password reset confirmation for unknown email.")
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset confirmation.",
			logging.Entry("err", err),
		)
		return result, err
	}

	if !u.PendingResetMatches(input.Code, s.now()) {
		s.log.Info(
			ctx,
			"Invalid or expired reset code.",
			logging.Entry("userId", u.ID),
		)
		return result, user.ErrInvalidOrExpiredResetCode
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		return result, err
	}
	err = s.userRepository.ResetPassword(ctx, u.ID, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password has been reset, reset code cleared.",
		logging.Entry("userId", u.ID),
	)
	return result, nil
}
