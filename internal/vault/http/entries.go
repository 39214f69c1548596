package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
	"github.com/lockboxhq/lockbox/internal/vault/service"
	"github.com/lockboxhq/lockbox/internal/vault/store"
	"github.com/lockboxhq/lockbox/pkg/httpx"
	"github.com/lockboxhq/lockbox/pkg/slogx"
	"github.com/lockboxhq/lockbox/pkg/vaultsdk"
)

// EntriesHandler serves the vault entry endpoints. Every route here sits
// behind the authn middleware; the caller's id always comes from the
// verified session, never from the request body.
type EntriesHandler struct {
	EntryService *service.EntryService
}

// HandleList godoc
//
//	@Summary		List vault entries
//	@Description	Returns all entries owned by the caller, newest first.
//	@Tags			Entries
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	vaultsdk.EntriesResponse	"entries, possibly empty"
//	@Failure		401	{object}	vaultsdk.ErrorResponse		"invalid or missing session token"
//	@Failure		500	{object}	vaultsdk.ErrorResponse		"internal error"
//	@Router			/v1/entries [get].
func (h *EntriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		vaultsdk.ErrInvalidToken.WriteError(w)
		return
	}

	entries, err := h.EntryService.List(ctx, userID)
	if err != nil {
		log.Error("entry list failed", "user_id", userID, "err", err)
		vaultsdk.ErrServerError.WriteError(w)
		return
	}

	resp := vaultsdk.EntriesResponse{
		Entries: make([]vaultsdk.EntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, entryResponse(e))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate godoc
//
//	@Summary		Create a vault entry
//	@Description	Stores a site/username/secret triple for the caller. Duplicate site+username pairs are allowed.
//	@Tags			Entries
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.CreateEntryRequest	true	"site, username, secret"
//	@Success		201		{object}	vaultsdk.EntryResponse		"created entry"
//	@Failure		400		{object}	vaultsdk.ErrorResponse		"missing site, username, or secret"
//	@Failure		401		{object}	vaultsdk.ErrorResponse		"invalid or missing session token"
//	@Failure		500		{object}	vaultsdk.ErrorResponse		"internal error"
//	@Router			/v1/entries [post].
func (h *EntriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		vaultsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req vaultsdk.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		vaultsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	entry, err := h.EntryService.Create(ctx, userID, req.Site, req.Username, req.Secret)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			vaultsdk.ErrInvalidRequest.WriteError(w)
			return
		}
		log.Error("entry create failed", "user_id", userID, "err", err)
		vaultsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, entryResponse(entry))
}

// HandleDelete godoc
//
//	@Summary		Delete a vault entry
//	@Description	Removes one entry by id. Entries owned by another account return 403, unknown ids 404.
//	@Tags			Entries
//	@Security		BearerAuth
//	@Param			id	path	string	true	"entry id"
//	@Success		204	"deleted"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"invalid or missing session token"
//	@Failure		403	{object}	vaultsdk.ErrorResponse	"entry owned by another account"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"no such entry"
//	@Failure		500	{object}	vaultsdk.ErrorResponse	"internal error"
//	@Router			/v1/entries/{id} [delete].
func (h *EntriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		vaultsdk.ErrInvalidToken.WriteError(w)
		return
	}

	entryID := r.PathValue("id")

	err := h.EntryService.Delete(ctx, userID, entryID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			vaultsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrNotOwner):
			vaultsdk.ErrForbidden.WriteError(w)
		default:
			log.Error("entry delete failed", "user_id", userID, "entry_id", entryID, "err", err)
			vaultsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func entryResponse(e domain.Entry) vaultsdk.EntryResponse {
	return vaultsdk.EntryResponse{
		ID:        e.ID,
		Site:      e.Site,
		Username:  e.Username,
		Secret:    e.Secret,
		CreatedAt: e.CreatedAt,
	}
}
