package createuser

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	c "schoolops/internal/core/domain/common"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	createuser "schoolops/internal/core/services/create_user"
	"schoolops/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[createuser.Input, createuser.Result]
}

func New(
	service services.Service[createuser.Input, createuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Name, validation.Length(0, 512)),
		validation.Field(&i.Role, validation.Length(0, 64)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderFailure(rw, "Email and password required", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderFailure(rw, "Email and password required", http.StatusBadRequest)
		return
	}

	role := user.Role(input.Role)
	if role == "" {
		role = user.RoleUser
	}
	result, err := h.service.Run(
		r.Context(),
		createuser.Input{
			Name:     c.NewOptional(input.Name, input.Name != ""),
			Email:    c.NewEmail(input.Email),
			Password: user.RawPassword(input.Password),
			Role:     role,
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderFailure(rw, "User with this email already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Success: true, Message: "User added", ID: int64(result.User.ID)},
		http.StatusOK,
	)
}
