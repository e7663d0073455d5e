package login

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	c "schoolops/internal/core/domain/common"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	loginwithemail "schoolops/internal/core/services/log_in_with_email"
	"schoolops/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[loginwithemail.Input, loginwithemail.Result]
}

func New(
	service services.Service[loginwithemail.Input, loginwithemail.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Result struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
	Email   string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderFailure(rw, "Invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderFailure(rw, "Email and password required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		loginwithemail.Input{
			Email:    c.NewEmail(input.Email),
			Password: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrEmailDomainNotAllowed) {
		response.RenderFailure(rw, "Invalid domain", http.StatusUnauthorized)
		return
	}
	if errors.Is(err, user.ErrInvalidCredentials) {
		response.RenderFailure(rw, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Success: true, Role: string(result.Role), Email: string(result.Email)},
		http.StatusOK,
	)
}
