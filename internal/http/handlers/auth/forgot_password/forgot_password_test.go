package forgotpassword

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	c "schoolops/internal/core/domain/common"
	"schoolops/internal/core/domain/user"
	service "schoolops/internal/core/services/send_password_reset_token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (service.Result, error) {
	s.input = &input
	return service.Result{}, s.err
}

func TestForgotPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceError   error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "known-email",
			body:           `{"email": "user@onmyowntechnology.com"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   NeutralMessage,
		},
		{
			id:             "unknown-email-gets-the-same-answer",
			body:           `{"email": "stranger@onmyowntechnology.com"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   NeutralMessage,
		},
		{
			id:             "empty-email",
			body:           `{"email": ""}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Email required",
		},
		{
			id:             "whitespace-email",
			body:           `{"email": "   "}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Email required",
		},
		{
			id:             "malformed-json",
			body:           `{"email": `,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Email required",
		},
		{
			id:             "send-failure",
			body:           `{"email": "user@onmyowntechnology.com"}`,
			serviceError:   user.ErrResetTokenSendFailed,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Failed to send email",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceError}
			handler := New(stub)

			req := httptest.NewRequest(
				http.MethodPost,
				"/forgot-password",
				strings.NewReader(testcase.body),
			)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testcase.expectedBody)
		})
	}
}

func TestForgotPasswordHandlerTrimsEmail(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	req := httptest.NewRequest(
		http.MethodPost,
		"/forgot-password",
		strings.NewReader(`{"email": "  user@onmyowntechnology.com  "}`),
	)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, stub.input)
	assert.Equal(t, c.Email("user@onmyowntechnology.com"), stub.input.Email)
}
