package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/lockboxhq/lockbox/internal/vault/domain"
	"github.com/lockboxhq/lockbox/internal/vault/service"
	"github.com/lockboxhq/lockbox/pkg/cryptox"
	"github.com/lockboxhq/lockbox/pkg/httpx"
	"github.com/lockboxhq/lockbox/pkg/slogx"
	"github.com/lockboxhq/lockbox/pkg/vaultsdk"
)

// Provider is one configured federated identity provider. The descriptor
// list is assembled once at startup; handlers only read it.
type Provider struct {
	Name        string
	Config      oauth2.Config
	UserInfoURL string
}

const (
	stateCookieName = "oauth_state"
	stateCookieTTL  = 10 * time.Minute
)

// OAuthHandler serves the federated sign-in flow: authorize redirects the
// browser to the provider, callback turns the provider's code into a local
// session token.
type OAuthHandler struct {
	Providers         []Provider
	FederationService *service.FederationService
	TokenService      *service.TokenService
}

func (h *OAuthHandler) provider(name string) (Provider, bool) {
	for _, p := range h.Providers {
		if p.Name == name {
			return p, true
		}
	}
	return Provider{}, false
}

// HandleAuthorize godoc
//
//	@Summary		Start federated sign-in
//	@Description	Redirects the browser to the provider's consent page. A state nonce is set as a short-lived cookie to bind the callback to this browser.
//	@Tags			OAuth
//	@Param			provider	path	string	true	"provider name, e.g. google"
//	@Success		302			"redirect to provider"
//	@Failure		404			{object}	vaultsdk.ErrorResponse	"unknown or disabled provider"
//	@Failure		500			{object}	vaultsdk.ErrorResponse	"internal error"
//	@Router			/v1/oauth/{provider}/authorize [get].
func (h *OAuthHandler) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	p, ok := h.provider(r.PathValue("provider"))
	if !ok {
		vaultsdk.ErrNotFound.WriteError(w)
		return
	}

	state, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		log.Error("state generation failed", "err", err)
		vaultsdk.ErrServerError.WriteError(w)
		return
	}

	// The cookie holds a fingerprint rather than the state itself, so a
	// leaked cookie alone cannot complete the flow.
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    cryptox.FingerprintToken(state),
		Path:     "/v1/oauth/",
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.NoCache(w)
	http.Redirect(w, r, p.Config.AuthCodeURL(state), http.StatusFound)
}

// HandleCallback godoc
//
//	@Summary		Complete federated sign-in
//	@Description	Exchanges the provider's authorization code, fetches the asserted identity, links or creates the local account, and issues a bearer session token.
//	@Tags			OAuth
//	@Produce		json
//	@Param			provider	path		string	true	"provider name, e.g. google"
//	@Param			code		query		string	true	"authorization code from the provider"
//	@Param			state		query		string	true	"state nonce from the authorize step"
//	@Success		200			{object}	vaultsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400			{object}	vaultsdk.ErrorResponse	"state mismatch, missing code, or unusable identity"
//	@Failure		404			{object}	vaultsdk.ErrorResponse	"unknown or disabled provider"
//	@Failure		500			{object}	vaultsdk.ErrorResponse	"internal error"
//	@Router			/v1/oauth/{provider}/callback [get].
func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := h.provider(r.PathValue("provider"))
	if !ok {
		vaultsdk.ErrNotFound.WriteError(w)
		return
	}

	if err := checkState(r); err != nil {
		log.Warn("oauth state rejected", "provider", p.Name, "err", err)
		vaultsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	// Expire the state cookie; it is single-use.
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/v1/oauth/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	code := r.URL.Query().Get("code")
	if code == "" {
		vaultsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		log.Warn("code exchange failed", "provider", p.Name, "err", err)
		vaultsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	ext, err := fetchIdentity(ctx, p, token)
	if err != nil {
		log.Warn("identity fetch rejected", "provider", p.Name, "err", err)
		vaultsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.FederationService.SignIn(ctx, ext)
	if err != nil {
		if errors.Is(err, service.ErrEmailMissing) {
			vaultsdk.ErrInvalidRequest.WriteError(w)
			return
		}
		log.Error("federated sign-in failed", "provider", p.Name, "err", err)
		vaultsdk.ErrServerError.WriteError(w)
		return
	}

	session, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("session issue failed", "user_id", user.ID, "err", err)
		vaultsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, vaultsdk.TokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(session.ExpiresIn.Seconds()),
	})
}

// checkState compares the state query parameter against the fingerprint
// stored in the browser cookie during the authorize step.
func checkState(r *http.Request) error {
	state := r.URL.Query().Get("state")
	if state == "" {
		return errors.New("missing state parameter")
	}

	cookie, err := r.Cookie(stateCookieName)
	if err != nil {
		return errors.New("missing state cookie")
	}

	want := cryptox.FingerprintToken(state)
	if subtle.ConstantTimeCompare([]byte(want), []byte(cookie.Value)) != 1 {
		return errors.New("state mismatch")
	}
	return nil
}

// providerUserInfo is the subset of the OpenID Connect userinfo response we
// consume. Google serves it at openidconnect.googleapis.com.
type providerUserInfo struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// fetchIdentity calls the provider's userinfo endpoint with the freshly
// exchanged token and validates the assertion. Accounts keyed on an
// unverified or absent email would let anyone claim someone else's address,
// so both cases are rejected outright.
func fetchIdentity(ctx context.Context, p Provider, token *oauth2.Token) (domain.ExternalIdentity, error) {
	client := p.Config.Client(ctx, token)

	resp, err := client.Get(p.UserInfoURL)
	if err != nil {
		return domain.ExternalIdentity{}, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ExternalIdentity{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info providerUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return domain.ExternalIdentity{}, fmt.Errorf("userinfo decode: %w", err)
	}

	if info.Subject == "" {
		return domain.ExternalIdentity{}, errors.New("userinfo missing subject")
	}
	if info.Email == "" {
		return domain.ExternalIdentity{}, errors.New("userinfo missing email")
	}
	if !info.EmailVerified {
		return domain.ExternalIdentity{}, errors.New("provider email not verified")
	}

	ext := domain.ExternalIdentity{
		Provider:     p.Name,
		Subject:      info.Subject,
		Email:        info.Email,
		Name:         info.Name,
		AvatarURL:    info.Picture,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	if idToken, ok := token.Extra("id_token").(string); ok {
		ext.IDToken = idToken
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry.UTC()
		ext.TokenExpiresAt = &expiry
	}
	return ext, nil
}
