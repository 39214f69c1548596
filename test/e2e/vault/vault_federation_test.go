package vault_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	httpapi "github.com/lockboxhq/lockbox/internal/vault/http"
	"github.com/lockboxhq/lockbox/internal/vault/service"
	"github.com/lockboxhq/lockbox/internal/vault/store/drivers/sqlite"
	"github.com/lockboxhq/lockbox/pkg/jwtx"
	"github.com/lockboxhq/lockbox/pkg/vaultsdk"
)

// fakeProvider is an in-process stand-in for an OpenID Connect provider:
// a token endpoint that accepts any code and a userinfo endpoint returning
// a fixed identity.
type fakeProvider struct {
	server *httptest.Server

	subject  string
	email    string
	verified bool
	name     string
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()

	p := &fakeProvider{
		subject:  "fake-subject-1",
		email:    "erin@example.com",
		verified: true,
		name:     "Erin Example",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "fake-access-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     "fake-id-token",
		})
	})
	mux.HandleFunc("GET /userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sub":            p.subject,
			"email":          p.email,
			"email_verified": p.verified,
			"name":           p.name,
		})
	})

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)
	return p
}

// startTestServerWithProvider boots the service with one federated provider
// pointed at the fake.
func startTestServerWithProvider(t *testing.T, fake *fakeProvider) *vaultsdk.Client {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "vault_e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256([]byte(testSigningSecret))
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256([]byte(testSigningSecret), testIssuer)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := httpapi.NewRouter(verifier, "test", st, logger)
	router.UserService = &service.UserService{Store: st}
	router.TokenService = &service.TokenService{Signer: signer, Issuer: testIssuer}
	router.FederationService = &service.FederationService{Store: st}
	router.EntryService = &service.EntryService{Store: st}
	router.Providers = []httpapi.Provider{{
		Name: "fake",
		Config: oauth2.Config{
			ClientID:     "test-client",
			ClientSecret: "test-secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  fake.server.URL + "/authorize",
				TokenURL: fake.server.URL + "/token",
			},
			Scopes: []string{"openid", "email", "profile"},
		},
		UserInfoURL: fake.server.URL + "/userinfo",
	}}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return vaultsdk.New(server.URL)
}

// completeSignIn drives the browser half of the flow: hit authorize, carry
// the state cookie to the callback, decode the session token.
func completeSignIn(t *testing.T, client *vaultsdk.Client) string {
	t.Helper()

	httpClient := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := httpClient.Get(client.BaseURL + "/v1/oauth/fake/authorize")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)

	var stateCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "oauth_state" {
			stateCookie = c
		}
	}
	require.NotNil(t, stateCookie, "authorize must set the state cookie")

	cbURL := client.BaseURL + "/v1/oauth/fake/callback?code=any-code&state=" + url.QueryEscape(state)
	req, err := http.NewRequest(http.MethodGet, cbURL, nil)
	require.NoError(t, err)
	req.AddCookie(stateCookie)

	cbResp, err := httpClient.Do(req)
	require.NoError(t, err)
	defer cbResp.Body.Close()
	require.Equal(t, http.StatusOK, cbResp.StatusCode)

	var token vaultsdk.TokenResponse
	require.NoError(t, json.NewDecoder(cbResp.Body).Decode(&token))
	require.NotEmpty(t, token.AccessToken)
	require.Equal(t, "Bearer", token.TokenType)
	return token.AccessToken
}

func TestFederatedSignInFlow(t *testing.T) {
	ctx := context.Background()
	fake := newFakeProvider(t)
	client := startTestServerWithProvider(t, fake)

	t.Run("provider is advertised", func(t *testing.T) {
		resp, err := client.Providers(ctx)
		require.NoError(t, err)
		require.Len(t, resp.Providers, 1)
		require.Equal(t, "fake", resp.Providers[0].Name)
		require.Equal(t, "/v1/oauth/fake/authorize", resp.Providers[0].AuthorizeURL)
	})

	t.Run("callback issues a working session", func(t *testing.T) {
		token := completeSignIn(t, client)

		session := client.NewSession(token)
		info, err := session.UserInfo(ctx)
		require.NoError(t, err)
		require.Equal(t, "erin@example.com", info.Email)
		require.Equal(t, "Erin Example", info.DisplayName)

		// The federated session uses the vault like any other.
		_, err = session.CreateEntry(ctx, vaultsdk.CreateEntryRequest{
			Site:     "example.com",
			Username: "erin",
			Secret:   "hunter2",
		})
		require.NoError(t, err)
	})

	t.Run("repeat sign-in reuses the account", func(t *testing.T) {
		first := client.NewSession(completeSignIn(t, client))
		second := client.NewSession(completeSignIn(t, client))

		firstInfo, err := first.UserInfo(ctx)
		require.NoError(t, err)
		secondInfo, err := second.UserInfo(ctx)
		require.NoError(t, err)
		require.Equal(t, firstInfo.UserID, secondInfo.UserID)
	})

	t.Run("callback without the state cookie is rejected", func(t *testing.T) {
		resp, err := http.Get(client.BaseURL + "/v1/oauth/fake/callback?code=x&state=y")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unverified provider email is rejected", func(t *testing.T) {
		fake.verified = false
		t.Cleanup(func() { fake.verified = true })

		httpClient := &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
		resp, err := httpClient.Get(client.BaseURL + "/v1/oauth/fake/authorize")
		require.NoError(t, err)
		defer resp.Body.Close()

		location, err := url.Parse(resp.Header.Get("Location"))
		require.NoError(t, err)
		state := location.Query().Get("state")

		var stateCookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == "oauth_state" {
				stateCookie = c
			}
		}
		require.NotNil(t, stateCookie)

		req, err := http.NewRequest(http.MethodGet,
			client.BaseURL+"/v1/oauth/fake/callback?code=x&state="+url.QueryEscape(state), nil)
		require.NoError(t, err)
		req.AddCookie(stateCookie)

		cbResp, err := httpClient.Do(req)
		require.NoError(t, err)
		defer cbResp.Body.Close()
		require.Equal(t, http.StatusBadRequest, cbResp.StatusCode)
	})

	t.Run("unknown provider is not found", func(t *testing.T) {
		resp, err := http.Get(client.BaseURL + "/v1/oauth/github/authorize")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
