package authenticator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/blogem/codeauth/authadapter"
)

// OpenIDProvider resolves identities through an OpenID Connect issuer.
// The userinfo subject is the identity id.
type OpenIDProvider struct {
	provider *oidc.Provider
	config   oauth2.Config
	client   *http.Client
}

// OpenIDConfig holds OpenID Connect configuration
type OpenIDConfig struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	Scopes       []string

	HTTPClient *http.Client
}

// NewOpenIDProvider discovers the issuer's endpoints and returns a provider.
func NewOpenIDProvider(ctx context.Context, cfg OpenIDConfig) (*OpenIDProvider, error) {
	if cfg.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	provider, err := oidc.NewProvider(oidc.ClientContext(ctx, client), cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", cfg.IssuerURL, err)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "profile"}
	}

	return &OpenIDProvider{
		provider: provider,
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     provider.Endpoint(),
			Scopes:       scopes,
		},
		client: client,
	}, nil
}

// GetAccessTokenFromCode exchanges the code at the discovered token endpoint.
func (p *OpenIDProvider) GetAccessTokenFromCode(ctx context.Context, authData authadapter.AuthData) (string, error) {
	conf := p.config
	if authData.RedirectURI != "" {
		conf.RedirectURL = authData.RedirectURI
	}

	token, err := conf.Exchange(oidc.ClientContext(ctx, p.client), authData.Code)
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}
	if token.AccessToken == "" {
		return "", errors.New("exchange code: no access_token in response")
	}
	return token.AccessToken, nil
}

// GetUserFromAccessToken calls the userinfo endpoint with the token.
func (p *OpenIDProvider) GetUserFromAccessToken(ctx context.Context, accessToken string, _ authadapter.AuthData) (*authadapter.RemoteIdentity, error) {
	info, err := p.provider.UserInfo(oidc.ClientContext(ctx, p.client), staticToken(accessToken))
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}

	var profile map[string]any
	if err := info.Claims(&profile); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	return &authadapter.RemoteIdentity{
		ID:      info.Subject,
		Profile: profile,
	}, nil
}
