package confirmpasswordreset

import (
	"errors"
	"net/http"
	c "passport/internal/core/domain/common"
	e "passport/internal/core/domain/errors"
	"passport/internal/core/domain/user"
	"passport/internal/core/services"
	service "passport/internal/core/services/confirm_password_reset"
	"passport/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email    string
	Code     string
	Password string
}

func (i *Input) FromForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	i.Email = r.PostFormValue("email")
	i.Code = r.PostFormValue("code")
	i.Password = r.PostFormValue("password")
	return nil
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Code, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 256)),
	)
}

type Result struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromForm(r); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{
			Email:       c.NewEmail(input.Email),
			Code:        user.ResetCode(input.Code),
			NewPassword: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.Render(
			rw,
			Result{Status: "Fail", Notes: "Unable to find matching email address"},
			http.StatusUnprocessableEntity,
		)
		return
	}
	if errors.Is(err, user.ErrInvalidOrExpiredResetCode) {
		response.Render(
			rw,
			Result{Status: "Fail", Notes: "Your code is incorrect or expired"},
			http.StatusUnprocessableEntity,
		)
		return
	}
	if err != nil {
		response.RenderServiceUnavailable(rw)
		return
	}

	response.Render(rw, Result{Status: "OK", Notes: "Your password has been reset"}, http.StatusOK)
}
