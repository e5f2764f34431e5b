package requestpasswordreset

import (
	"errors"
	"net/http"
	c "passport/internal/core/domain/common"
	e "passport/internal/core/domain/errors"
	ratelimiter "passport/internal/core/domain/rate_limiter"
	"passport/internal/core/services"
	service "passport/internal/core/services/request_password_reset"
	"passport/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// The response body never depends on whether the email matched an
// account.
const NOTES = "Password reset instructions sent if your email address was found"

type Handler struct {
	service    services.Service[service.Input, service.Result]
	isTestMode bool
}

func New(
	service services.Service[service.Input, service.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
	)
}

type Result struct {
	Notes string `json:"notes"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{Email: r.URL.Query().Get("email")}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{Email: c.NewEmail(input.Email)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if err != nil {
		response.RenderServiceUnavailable(rw)
		return
	}

	if h.isTestMode && result.Code != "" {
		rw.Header().Set("x-test-reset-code", string(result.Code))
	}
	response.Render(rw, Result{Notes: NOTES}, http.StatusOK)
}
