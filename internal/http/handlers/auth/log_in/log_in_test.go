package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	c "schoolops/internal/core/domain/common"
	"schoolops/internal/core/domain/user"
	service "schoolops/internal/core/services/log_in_with_email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	result service.Result
	err    error
	input  *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (service.Result, error) {
	s.input = &input
	if s.err != nil {
		return service.Result{}, s.err
	}
	return s.result, nil
}

func TestLogInHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceResult  service.Result
		serviceError   error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:   "success",
			body: `{"email": "user@onmyowntechnology.com", "password": "secret"}`,
			serviceResult: service.Result{
				Role:  user.RoleAdministrator,
				Email: c.Email("user@onmyowntechnology.com"),
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"role":"administrator"`,
		},
		{
			id:             "missing-email",
			body:           `{"password": "secret"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Email and password required",
		},
		{
			id:             "missing-password",
			body:           `{"email": "user@onmyowntechnology.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Email and password required",
		},
		{
			id:             "malformed-json",
			body:           `{"email": `,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request data",
		},
		{
			id:             "wrong-domain",
			body:           `{"email": "user@gmail.com", "password": "secret"}`,
			serviceError:   user.ErrEmailDomainNotAllowed,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid domain",
		},
		{
			id:             "invalid-credentials",
			body:           `{"email": "user@onmyowntechnology.com", "password": "wrong"}`,
			serviceError:   user.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid credentials",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{result: testcase.serviceResult, err: testcase.serviceError}
			handler := New(stub)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(testcase.body))
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testcase.expectedBody)
		})
	}
}

func TestLogInHandlerTrimsEmail(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	req := httptest.NewRequest(
		http.MethodPost,
		"/login",
		strings.NewReader(`{"email": "  user@onmyowntechnology.com  ", "password": "secret"}`),
	)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, stub.input)
	assert.Equal(t, c.Email("user@onmyowntechnology.com"), stub.input.Email)
}
