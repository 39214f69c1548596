package http

import (
	"net/http"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
	"github.com/lockboxhq/lockbox/internal/vault/service"
	"github.com/lockboxhq/lockbox/pkg/httpx"
	"github.com/lockboxhq/lockbox/pkg/slogx"
	"github.com/lockboxhq/lockbox/pkg/vaultsdk"
)

// UserInfoHandler serves GET /v1/userinfo.
type UserInfoHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get user information
//	@Description	Returns the public identity of the authenticated user.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	vaultsdk.UserResponse	"user_id, email, display_name"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"invalid or missing session token"
//	@Failure		500	{object}	vaultsdk.ErrorResponse	"internal error"
//	@Router			/v1/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		vaultsdk.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "err", err)
		vaultsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// userResponse maps a domain user to its public wire form. The password
// hash never crosses this boundary.
func userResponse(u domain.User) vaultsdk.UserResponse {
	return vaultsdk.UserResponse{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		VerifiedAt:  u.VerifiedAt,
		CreatedAt:   u.CreatedAt,
	}
}
