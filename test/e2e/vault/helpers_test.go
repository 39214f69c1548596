package vault_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	httpapi "github.com/lockboxhq/lockbox/internal/vault/http"
	"github.com/lockboxhq/lockbox/internal/vault/service"
	"github.com/lockboxhq/lockbox/internal/vault/store/drivers/sqlite"
	"github.com/lockboxhq/lockbox/pkg/jwtx"
	"github.com/lockboxhq/lockbox/pkg/vaultsdk"
)

/*
 * Common setup for vault service end-to-end tests. The full service (router,
 * services, sqlite store) runs in-process behind an httptest server and is
 * exercised through the vaultsdk client, exactly the way an external caller
 * would use it.
 */

const (
	testSigningSecret = "e2e-test-signing-secret-32-bytes!"
	testIssuer        = "lockbox-vault-test"
)

// startTestServer boots a complete service instance against a throwaway
// database and returns an SDK client pointed at it.
func startTestServer(t *testing.T) *vaultsdk.Client {
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
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return vaultsdk.New(server.URL)
}

// requireAPIError asserts err is an APIError with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *vaultsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
