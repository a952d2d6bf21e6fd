package authenticator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/blogem/codeauth/authadapter"
)

const maxProfileBytes = 1 << 20

// OAuth2Provider exchanges codes at a token endpoint and reads the user id
// from a profile endpoint. It suits providers without OIDC discovery.
type OAuth2Provider struct {
	config      oauth2.Config
	userInfoURL string
	idField     string
	jsonp       bool
	client      *http.Client
}

// OAuth2Config holds OAuth2 provider configuration
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	// IDField is the profile key holding the user id. Default "id".
	IDField string
	// JSONP marks profile responses wrapped in a callback.
	JSONP  bool
	Scopes []string

	HTTPClient *http.Client
}

// NewOAuth2Provider creates a new OAuth2 provider with the given configuration
func NewOAuth2Provider(cfg OAuth2Config) (*OAuth2Provider, error) {
	if cfg.TokenURL == "" {
		return nil, errors.New("token URL is required")
	}
	if cfg.UserInfoURL == "" {
		return nil, errors.New("user info URL is required")
	}

	idField := cfg.IDField
	if idField == "" {
		idField = "id"
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &OAuth2Provider{
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
			Scopes: cfg.Scopes,
		},
		userInfoURL: cfg.UserInfoURL,
		idField:     idField,
		jsonp:       cfg.JSONP,
		client:      client,
	}, nil
}

func (p *OAuth2Provider) context(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.client)
}

// GetAccessTokenFromCode exchanges the attempt's code, using its
// redirect_uri when the client sent one.
func (p *OAuth2Provider) GetAccessTokenFromCode(ctx context.Context, authData authadapter.AuthData) (string, error) {
	conf := p.config
	if authData.RedirectURI != "" {
		conf.RedirectURL = authData.RedirectURI
	}

	token, err := conf.Exchange(p.context(ctx), authData.Code)
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}
	if token.AccessToken == "" {
		return "", errors.New("exchange code: no access_token in response")
	}
	return token.AccessToken, nil
}

// GetUserFromAccessToken fetches the profile endpoint with the token.
func (p *OAuth2Provider) GetUserFromAccessToken(ctx context.Context, accessToken string, _ authadapter.AuthData) (*authadapter.RemoteIdentity, error) {
	client := oauth2.NewClient(p.context(ctx), staticToken(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch user info: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBytes))
	if err != nil {
		return nil, fmt.Errorf("read user info: %w", err)
	}

	profile, err := p.decodeProfile(body)
	if err != nil {
		return nil, err
	}

	return &authadapter.RemoteIdentity{
		ID:      profileID(profile[p.idField]),
		Profile: profile,
	}, nil
}

func (p *OAuth2Provider) decodeProfile(body []byte) (map[string]any, error) {
	if p.jsonp {
		var profile map[string]any
		if err := authadapter.UnwrapJSONP(string(body), &profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var profile map[string]any
	if err := dec.Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	return profile, nil
}

// profileID renders string and numeric ids; anything else is no id.
func profileID(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
