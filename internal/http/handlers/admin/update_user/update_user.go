package updateuser

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	c "schoolops/internal/core/domain/common"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	updateuser "schoolops/internal/core/services/update_user"
	"schoolops/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[updateuser.Input, updateuser.Result]
}

func New(
	service services.Service[updateuser.Input, updateuser.Result],
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
	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.RenderFailure(rw, "Invalid user ID", http.StatusBadRequest)
		return
	}

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
	_, err = h.service.Run(
		r.Context(),
		updateuser.Input{
			ID:       user.ID(id),
			Name:     c.NewOptional(input.Name, input.Name != ""),
			Email:    c.NewEmail(input.Email),
			Password: user.RawPassword(input.Password),
			Role:     role,
		},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderFailure(rw, "User not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderFailure(rw, "User with this email already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(rw, "User updated", http.StatusOK)
}
