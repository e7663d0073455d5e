package resetpassword

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"schoolops/internal/core/domain/user"
	service "schoolops/internal/core/services/reset_password"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (service.Result, error) {
	s.input = &input
	return service.Result{}, s.err
}

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceError   error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "success",
			body:           `{"token": "valid-token", "password": "new-password"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   "Password reset successful",
		},
		{
			id:             "missing-token",
			body:           `{"password": "new-password"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Token and new password required",
		},
		{
			id:             "missing-password",
			body:           `{"token": "valid-token"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Token and new password required",
		},
		{
			id:             "malformed-json",
			body:           `{"token": `,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Token and new password required",
		},
		{
			id:             "unknown-token",
			body:           `{"token": "unknown-token", "password": "new-password"}`,
			serviceError:   user.ErrResetTokenDoesNotExist,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid or expired token",
		},
		{
			id:             "expired-token",
			body:           `{"token": "expired-token", "password": "new-password"}`,
			serviceError:   user.ErrResetTokenExpired,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Token expired",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceError}
			handler := New(stub)

			req := httptest.NewRequest(
				http.MethodPost,
				"/reset-password",
				strings.NewReader(testcase.body),
			)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testcase.expectedBody)
		})
	}
}
