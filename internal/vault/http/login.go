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

// LoginHandler serves POST /v1/auth/login. Verification failures are
// deliberately indistinguishable: the response never says whether the email
// exists.
type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Log in with email and password
//	@Description	Verifies credentials and issues a bearer session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.LoginRequest	true	"email and password"
//	@Success		200		{object}	vaultsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"missing email or password"
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"invalid email or password"
//	@Failure		500		{object}	vaultsdk.ErrorResponse	"internal error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req vaultsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		vaultsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField):
			vaultsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			vaultsdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("credential verification failed", "err", err)
			vaultsdk.ErrServerError.WriteError(w)
		}
		return
	}

	session, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("session issue failed", "user_id", user.ID, "err", err)
		vaultsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vaultsdk.TokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(session.ExpiresIn.Seconds()),
	})
}
