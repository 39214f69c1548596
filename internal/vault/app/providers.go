package app

import (
	"fmt"

	"golang.org/x/oauth2"

	httpapi "github.com/lockboxhq/lockbox/internal/vault/http"
)

// providerSpec is one row of the static provider table. A provider is
// enabled when its credentials are present; there is no runtime registry.
type providerSpec struct {
	name        string
	authURL     string
	tokenURL    string
	userInfoURL string
	scopes      []string
	enabled     func(cfg Config) bool
	credentials func(cfg Config) (id, secret string)
}

var providerTable = []providerSpec{
	{
		name:        "google",
		authURL:     "https://accounts.google.com/o/oauth2/v2/auth",
		tokenURL:    "https://oauth2.googleapis.com/token",
		userInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
		scopes:      []string{"openid", "email", "profile"},
		enabled: func(cfg Config) bool {
			return cfg.GoogleClientID != "" && cfg.GoogleClientSecret != ""
		},
		credentials: func(cfg Config) (string, string) {
			return cfg.GoogleClientID, cfg.GoogleClientSecret
		},
	},
}

// BuildProviders evaluates the provider table against the loaded config
// once, at startup. Deployments without provider credentials get an empty
// slice and the federation endpoints answer 404.
func BuildProviders(cfg Config) []httpapi.Provider {
	providers := make([]httpapi.Provider, 0, len(providerTable))
	for _, spec := range providerTable {
		if !spec.enabled(cfg) {
			continue
		}
		id, secret := spec.credentials(cfg)

		providers = append(providers, httpapi.Provider{
			Name: spec.name,
			Config: oauth2.Config{
				ClientID:     id,
				ClientSecret: secret,
				Endpoint: oauth2.Endpoint{
					AuthURL:  spec.authURL,
					TokenURL: spec.tokenURL,
				},
				RedirectURL: fmt.Sprintf("%s/v1/oauth/%s/callback", cfg.PublicBaseURL, spec.name),
				Scopes:      spec.scopes,
			},
			UserInfoURL: spec.userInfoURL,
		})
	}
	return providers
}
