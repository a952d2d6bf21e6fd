// Package authenticator provides generic identity providers for
// authadapter: a plain OAuth2 provider with a profile endpoint and an
// OpenID Connect provider using discovery.
package authenticator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/blogem/codeauth/authadapter"
)

// Provider kinds accepted in Config.Kind.
const (
	KindOAuth2 = "oauth2"
	KindOIDC   = "oidc"
)

const defaultTimeout = 10 * time.Second

// Config describes one configured provider.
type Config struct {
	Kind string `yaml:"kind"`

	// OIDC
	IssuerURL string `yaml:"issuer"`

	// OAuth2
	AuthURL     string `yaml:"authUrl"`
	TokenURL    string `yaml:"tokenUrl"`
	UserInfoURL string `yaml:"userInfoUrl"`
	IDField     string `yaml:"idField"`
	JSONP       bool   `yaml:"jsonp"`

	Scopes  []string      `yaml:"scopes"`
	Timeout time.Duration `yaml:"timeout"`

	Options authadapter.Options `yaml:",inline"`
}

// New builds the provider described by cfg. OIDC providers perform
// discovery, so ctx bounds that network call.
func New(ctx context.Context, cfg Config) (authadapter.Provider, error) {
	switch cfg.Kind {
	case KindOAuth2, "":
		return NewOAuth2Provider(OAuth2Config{
			ClientID:     cfg.Options.ClientID,
			ClientSecret: cfg.Options.ClientSecret,
			AuthURL:      cfg.AuthURL,
			TokenURL:     cfg.TokenURL,
			UserInfoURL:  cfg.UserInfoURL,
			IDField:      cfg.IDField,
			JSONP:        cfg.JSONP,
			Scopes:       cfg.Scopes,
			HTTPClient:   &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)},
		})
	case KindOIDC:
		return NewOpenIDProvider(ctx, OpenIDConfig{
			IssuerURL:    cfg.IssuerURL,
			ClientID:     cfg.Options.ClientID,
			ClientSecret: cfg.Options.ClientSecret,
			Scopes:       cfg.Scopes,
			HTTPClient:   &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)},
		})
	default:
		return nil, fmt.Errorf("unknown provider kind %q", cfg.Kind)
	}
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultTimeout
	}
	return d
}

// staticToken wraps an access token the client already holds.
func staticToken(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
}
