package confirmpasswordreset

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"passport/internal/core/domain/user"
	service "passport/internal/core/services/confirm_password_reset"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(
	ctx context.Context,
	input service.Input,
) (result service.Result, err error) {
	s.input = &input
	return result, s.err
}

func serve(handler *Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/password_reset", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"email":    {"alice@example.com"},
		"code":     {"dGVzdC1jb2Rl"},
		"password": {"Secret123!"},
	}
}

func TestPasswordReset(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	rec := serve(handler, validForm())

	assert := require.New(t)
	assert.Equal(http.StatusOK, rec.Code)

	var result Result
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal("OK", result.Status)
	assert.Equal("Your password has been reset", result.Notes)

	assert.NotNil(stub.input)
	assert.Equal("alice@example.com", string(stub.input.Email))
	assert.Equal(user.ResetCode("dGVzdC1jb2Rl"), stub.input.Code)
	assert.Equal(user.RawPassword("Secret123!"), stub.input.NewPassword)
}

func TestUnknownEmail(t *testing.T) {
	handler := New(&stubService{err: user.ErrUserDoesNotExist})

	rec := serve(handler, validForm())

	assert := require.New(t)
	assert.Equal(http.StatusUnprocessableEntity, rec.Code)

	var result Result
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal("Fail", result.Status)
	assert.Equal("Unable to find matching email address", result.Notes)
}

func TestInvalidOrExpiredCode(t *testing.T) {
	handler := New(&stubService{err: user.ErrInvalidOrExpiredResetCode})

	rec := serve(handler, validForm())

	assert := require.New(t)
	assert.Equal(http.StatusUnprocessableEntity, rec.Code)

	var result Result
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal("Fail", result.Status)
	assert.Equal("Your code is incorrect or expired", result.Notes)
}

func TestInvalidInput(t *testing.T) {
	cases := []struct {
		id   string
		form url.Values
	}{
		{id: "empty form", form: url.Values{}},
		{
			id: "missing code",
			form: url.Values{
				"email":    {"alice@example.com"},
				"password": {"Secret123!"},
			},
		},
		{
			id: "password too short",
			form: url.Values{
				"email":    {"alice@example.com"},
				"code":     {"dGVzdC1jb2Rl"},
				"password": {"short"},
			},
		},
		{
			id: "invalid email",
			form: url.Values{
				"email":    {"not-an-email"},
				"code":     {"dGVzdC1jb2Rl"},
				"password": {"Secret123!"},
			},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{}
			handler := New(stub)
			rec := serve(handler, testcase.form)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, stub.input)
		})
	}
}

func TestServiceUnavailable(t *testing.T) {
	handler := New(&stubService{err: context.DeadlineExceeded})
	rec := serve(handler, validForm())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
