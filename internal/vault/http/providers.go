package http

import (
	"net/http"

	"github.com/lockboxhq/lockbox/pkg/httpx"
	"github.com/lockboxhq/lockbox/pkg/vaultsdk"
)

// ProvidersHandler serves GET /v1/auth/providers.
type ProvidersHandler struct {
	Providers []Provider
}

// ServeHTTP godoc
//
//	@Summary		List federated identity providers
//	@Description	Returns the providers enabled on this deployment with their authorize URLs. Empty list when none are configured.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	vaultsdk.ProvidersResponse	"enabled providers"
//	@Router			/v1/auth/providers [get].
func (h *ProvidersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := vaultsdk.ProvidersResponse{
		Providers: make([]vaultsdk.ProviderInfo, 0, len(h.Providers)),
	}
	for _, p := range h.Providers {
		resp.Providers = append(resp.Providers, vaultsdk.ProviderInfo{
			Name:         p.Name,
			AuthorizeURL: "/v1/oauth/" + p.Name + "/authorize",
		})
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
