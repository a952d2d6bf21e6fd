package authenticator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/codeauth/authadapter"
)

const (
	goodCode  = "good-code"
	goodToken = "tok-1"
)

// fakeIdP is a minimal OAuth2 + OIDC identity provider.
type fakeIdP struct {
	*httptest.Server

	mu           sync.Mutex
	redirectURIs []string
	tokenCalls   int
}

func newFakeIdP(t *testing.T) *fakeIdP {
	t.Helper()

	f := &fakeIdP{}
	mux := http.NewServeMux()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.tokenCalls++
		f.redirectURIs = append(f.redirectURIs, r.Form.Get("redirect_uri"))
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if r.Form.Get("code") != goodCode {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"invalid_grant"}`)
			return
		}
		fmt.Fprintf(w, `{"access_token":%q,"token_type":"Bearer","expires_in":3600}`, goodToken)
	})

	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+goodToken {
			w.WriteHeader(http.StatusUnauthorized)
			return false
		}
		return true
	}

	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":12345678901,"login":"octo"}`)
	})

	mux.HandleFunc("/user-no-id", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"login":"octo"}`)
	})

	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		w.Header().Set("Content-Type", "text/javascript")
		fmt.Fprint(w, "callback( {\"client_id\":\"101\",\"openid\":\"OPEN-1\"} );\n")
	})

	mux.HandleFunc("/me-numeric", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		w.Header().Set("Content-Type", "text/javascript")
		fmt.Fprint(w, `callback({"id":12345678901234567891});`)
	})

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"issuer":                                f.URL,
			"authorization_endpoint":                f.URL + "/authorize",
			"token_endpoint":                        f.URL + "/token",
			"userinfo_endpoint":                     f.URL + "/userinfo",
			"jwks_uri":                              f.URL + "/keys",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	})

	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"sub":"sub-1","email":"octo@example.com","email_verified":true}`)
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeIdP) oauth2Config(path string) OAuth2Config {
	return OAuth2Config{
		ClientID:     "client",
		ClientSecret: "secret",
		AuthURL:      f.URL + "/authorize",
		TokenURL:     f.URL + "/token",
		UserInfoURL:  f.URL + path,
		HTTPClient:   f.Client(),
	}
}

func TestOAuth2Provider_ExchangeAndLookup(t *testing.T) {
	idp := newFakeIdP(t)
	p, err := NewOAuth2Provider(idp.oauth2Config("/user"))
	require.NoError(t, err)

	ctx := context.Background()
	token, err := p.GetAccessTokenFromCode(ctx, authadapter.AuthData{
		Code:        goodCode,
		RedirectURI: "https://app.example.com/cb",
	})
	require.NoError(t, err)
	assert.Equal(t, goodToken, token)
	assert.Equal(t, []string{"https://app.example.com/cb"}, idp.redirectURIs)

	user, err := p.GetUserFromAccessToken(ctx, token, authadapter.AuthData{})
	require.NoError(t, err)
	assert.Equal(t, "12345678901", user.ID)
	assert.Equal(t, "octo", user.Profile["login"])
}

func TestOAuth2Provider_BadCode(t *testing.T) {
	idp := newFakeIdP(t)
	p, err := NewOAuth2Provider(idp.oauth2Config("/user"))
	require.NoError(t, err)

	_, err = p.GetAccessTokenFromCode(context.Background(), authadapter.AuthData{Code: "stolen"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exchange code")
}

func TestOAuth2Provider_RejectedToken(t *testing.T) {
	idp := newFakeIdP(t)
	p, err := NewOAuth2Provider(idp.oauth2Config("/user"))
	require.NoError(t, err)

	_, err = p.GetUserFromAccessToken(context.Background(), "forged", authadapter.AuthData{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestOAuth2Provider_JSONPProfile(t *testing.T) {
	idp := newFakeIdP(t)
	cfg := idp.oauth2Config("/me")
	cfg.JSONP = true
	cfg.IDField = "openid"
	p, err := NewOAuth2Provider(cfg)
	require.NoError(t, err)

	user, err := p.GetUserFromAccessToken(context.Background(), goodToken, authadapter.AuthData{})

	require.NoError(t, err)
	assert.Equal(t, "OPEN-1", user.ID)
	assert.Equal(t, "101", user.Profile["client_id"])
}

func TestOAuth2Provider_JSONPLargeNumericID(t *testing.T) {
	idp := newFakeIdP(t)
	cfg := idp.oauth2Config("/me-numeric")
	cfg.JSONP = true
	p, err := NewOAuth2Provider(cfg)
	require.NoError(t, err)

	user, err := p.GetUserFromAccessToken(context.Background(), goodToken, authadapter.AuthData{})

	require.NoError(t, err)
	assert.Equal(t, "12345678901234567891", user.ID)
}

func TestOAuth2Provider_ProfileWithoutID(t *testing.T) {
	idp := newFakeIdP(t)
	p, err := NewOAuth2Provider(idp.oauth2Config("/user-no-id"))
	require.NoError(t, err)

	user, err := p.GetUserFromAccessToken(context.Background(), goodToken, authadapter.AuthData{})

	require.NoError(t, err)
	assert.Empty(t, user.ID)
}

func TestNewOAuth2Provider_Validation(t *testing.T) {
	_, err := NewOAuth2Provider(OAuth2Config{UserInfoURL: "https://x/user"})
	assert.EqualError(t, err, "token URL is required")

	_, err = NewOAuth2Provider(OAuth2Config{TokenURL: "https://x/token"})
	assert.EqualError(t, err, "user info URL is required")
}

func TestAdapterWithOAuth2Provider(t *testing.T) {
	idp := newFakeIdP(t)
	p, err := NewOAuth2Provider(idp.oauth2Config("/user"))
	require.NoError(t, err)

	a, err := authadapter.New("octo", p, &authadapter.Options{ClientID: "client", ClientSecret: "secret"})
	require.NoError(t, err)

	res, err := a.BeforeFind(context.Background(), authadapter.AuthData{
		Code:        goodCode,
		RedirectURI: "https://app.example.com/cb",
	})
	require.NoError(t, err)
	assert.Equal(t, authadapter.AuthData{ID: "12345678901", AccessToken: goodToken}, res.AuthData)

	_, err = a.BeforeFind(context.Background(), authadapter.AuthData{ID: "1", Code: goodCode})
	assert.ErrorIs(t, err, authadapter.ErrNotFound)
}

func TestAdapterWithProfileWithoutID(t *testing.T) {
	idp := newFakeIdP(t)
	p, err := NewOAuth2Provider(idp.oauth2Config("/user-no-id"))
	require.NoError(t, err)

	a, err := authadapter.New("octo", p, &authadapter.Options{EnableInsecureAuth: true})
	require.NoError(t, err)

	_, err = a.BeforeFind(context.Background(), authadapter.AuthData{AccessToken: goodToken})
	assert.ErrorIs(t, err, authadapter.ErrNotFound)
}

func TestOpenIDProvider(t *testing.T) {
	idp := newFakeIdP(t)
	ctx := context.Background()

	p, err := NewOpenIDProvider(ctx, OpenIDConfig{
		IssuerURL:    idp.URL,
		ClientID:     "client",
		ClientSecret: "secret",
		HTTPClient:   idp.Client(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"openid", "profile"}, p.config.Scopes)

	token, err := p.GetAccessTokenFromCode(ctx, authadapter.AuthData{Code: goodCode})
	require.NoError(t, err)
	assert.Equal(t, goodToken, token)

	user, err := p.GetUserFromAccessToken(ctx, token, authadapter.AuthData{})
	require.NoError(t, err)
	assert.Equal(t, "sub-1", user.ID)
	assert.Equal(t, "octo@example.com", user.Profile["email"])

	_, err = p.GetUserFromAccessToken(ctx, "forged", authadapter.AuthData{})
	assert.Error(t, err)
}

func TestNewOpenIDProvider_RequiresIssuer(t *testing.T) {
	_, err := NewOpenIDProvider(context.Background(), OpenIDConfig{})
	assert.EqualError(t, err, "issuer URL is required")
}

func TestNew(t *testing.T) {
	idp := newFakeIdP(t)
	ctx := context.Background()

	p, err := New(ctx, Config{Kind: KindOAuth2, TokenURL: idp.URL + "/token", UserInfoURL: idp.URL + "/user"})
	require.NoError(t, err)
	assert.IsType(t, &OAuth2Provider{}, p)

	p, err = New(ctx, Config{Kind: KindOIDC, IssuerURL: idp.URL})
	require.NoError(t, err)
	assert.IsType(t, &OpenIDProvider{}, p)

	_, err = New(ctx, Config{Kind: "saml"})
	assert.EqualError(t, err, `unknown provider kind "saml"`)
}
