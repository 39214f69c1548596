package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lockboxhq/lockbox/internal/vault/service"
	"github.com/lockboxhq/lockbox/pkg/httpx"
	"github.com/lockboxhq/lockbox/pkg/slogx"
	"github.com/lockboxhq/lockbox/pkg/vaultsdk"
)

// RegisterHandler serves POST /v1/auth/register.
type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates a direct (password) account. The password is hashed server-side and never echoed back.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.RegisterRequest	true	"email, password, optional display_name"
//	@Success		201		{object}	vaultsdk.UserResponse		"created account"
//	@Failure		400		{object}	vaultsdk.ErrorResponse		"missing email or password"
//	@Failure		409		{object}	vaultsdk.ErrorResponse		"email already registered"
//	@Failure		500		{object}	vaultsdk.ErrorResponse		"internal error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req vaultsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		vaultsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.Register(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField):
			vaultsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrEmailTaken):
			vaultsdk.ErrConflict.WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			vaultsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userResponse(user))
}
