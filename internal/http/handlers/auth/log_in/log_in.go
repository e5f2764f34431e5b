package login

import (
	"errors"
	"net/http"
	c "passport/internal/core/domain/common"
	e "passport/internal/core/domain/errors"
	ratelimiter "passport/internal/core/domain/rate_limiter"
	"passport/internal/core/domain/user"
	"passport/internal/core/services"
	"passport/internal/core/services/auth"
	issuesession "passport/internal/core/services/issue_session"
	"passport/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[issuesession.Input, issuesession.Result]
}

func New(
	service services.Service[issuesession.Input, issuesession.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Status string         `json:"status"`
	Token  string         `json:"token,omitempty"`
	User   *response.User `json:"user,omitempty"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	currentUser, ok := auth.UserFromContext(r.Context())

	result, err := h.service.Run(
		r.Context(),
		issuesession.Input{User: c.NewOptional(currentUser, ok)},
	)
	if errors.Is(err, user.ErrNotAuthenticated) {
		response.Render(rw, Result{Status: "Fail"}, http.StatusUnauthorized)
		return
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if err != nil {
		response.RenderServiceUnavailable(rw)
		return
	}

	userResponse := &response.User{}
	userResponse.FromDomainUser(result.User)
	response.Render(
		rw,
		Result{Status: "OK", Token: string(result.Token), User: userResponse},
		http.StatusOK,
	)
}
