package forgotpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	c "schoolops/internal/core/domain/common"
	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/user"
	"schoolops/internal/core/services"
	sendpasswordresettoken "schoolops/internal/core/services/send_password_reset_token"
	"schoolops/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

// NeutralMessage is returned whether or not the email maps to a user, so the
// endpoint cannot be used to probe for accounts.
const NeutralMessage = "If the email exists, a reset link will be sent."

type Handler struct {
	service services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
}

func New(
	service services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

// Only presence is checked. Format validation would answer differently for
// malformed addresses and so leak which inputs reach the store.
func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderFailure(rw, "Email required", http.StatusBadRequest)
		return
	}
	input.Email = string(c.NewEmail(input.Email))
	if err := input.Validate(); err != nil {
		response.RenderFailure(rw, "Email required", http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		sendpasswordresettoken.Input{Email: c.Email(input.Email)},
	)
	if errors.Is(err, user.ErrResetTokenSendFailed) {
		response.RenderFailure(rw, "Failed to send email", http.StatusInternalServerError)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(rw, NeutralMessage, http.StatusOK)
}
