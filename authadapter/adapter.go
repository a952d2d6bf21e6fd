// Package authadapter verifies a user's identity against an external
// identity provider and shapes the result for the account system.
//
// An Adapter is built from a Provider, which supplies the two
// provider-specific network steps (code to token, token to identity).
// The account system calls BeforeFind once per attempt, persists the
// returned Resolution.AuthData, and then calls one of the pure lifecycle
// entry points (ValidateLogin, ValidateSetUp, ValidateUpdate, AfterFind).
package authadapter

import (
	"context"

	"go.uber.org/zap"

	"github.com/blogem/codeauth/logger"
)

// Provider is implemented by every concrete identity provider. These are
// the only places where provider network calls happen and the only places
// provider-specific errors may come from.
//
// GetUserFromAccessToken must return an identity with a stable, non-empty
// ID; an empty ID is treated as an unverifiable identity.
type Provider interface {
	GetAccessTokenFromCode(ctx context.Context, authData AuthData) (string, error)
	GetUserFromAccessToken(ctx context.Context, accessToken string, authData AuthData) (*RemoteIdentity, error)
}

// Unimplemented can be embedded by providers that only support part of
// the flow. Its methods fail with KindNotImplemented.
type Unimplemented struct{}

func (Unimplemented) GetAccessTokenFromCode(context.Context, AuthData) (string, error) {
	return "", newError(KindNotImplemented, "", "getAccessTokenFromCode is not implemented")
}

func (Unimplemented) GetUserFromAccessToken(context.Context, string, AuthData) (*RemoteIdentity, error) {
	return nil, newError(KindNotImplemented, "", "getUserFromAccessToken is not implemented")
}

// Adapter binds a Provider to validated Options. Its fields are set once
// in New, so one Adapter may serve any number of concurrent attempts.
type Adapter struct {
	name     string
	provider Provider
	opts     Options
	log      *zap.Logger
}

// Option customises an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger used when the context carries none.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// New validates opts and returns an adapter named name backed by provider.
func New(name string, provider Provider, opts *Options, options ...Option) (*Adapter, error) {
	if provider == nil {
		return nil, newError(KindNotImplemented, name, "provider is required")
	}
	if err := ValidateOptions(name, opts); err != nil {
		return nil, err
	}

	a := &Adapter{
		name:     name,
		provider: provider,
		opts:     *opts,
	}
	for _, o := range options {
		o(a)
	}
	return a, nil
}

// Name returns the adapter name used in error messages.
func (a *Adapter) Name() string {
	return a.name
}

// Options returns a copy of the adapter's settings.
func (a *Adapter) Options() Options {
	return a.opts
}

func (a *Adapter) loggerFor(ctx context.Context) *zap.Logger {
	if l, ok := logger.FromContext(ctx); ok {
		return l
	}
	if a.log != nil {
		return a.log
	}
	return logger.L()
}

// BeforeFind proves the caller holds the identity described by authData.
//
// With insecure auth enabled and no code present, the access token is
// resolved directly and a missing ID is filled from the resolved identity.
// Otherwise the code is exchanged for a token first.
// A claimed ID that differs from the resolved identity fails with
// KindNotFound on either path. Provider errors are returned unchanged.
//
// authData is not modified; the sanitized record is in the Resolution.
func (a *Adapter) BeforeFind(ctx context.Context, authData AuthData) (Resolution, error) {
	if a.opts.EnableInsecureAuth && authData.Code == "" {
		return a.resolveToken(ctx, authData)
	}
	return a.resolveCode(ctx, authData)
}

func (a *Adapter) resolveToken(ctx context.Context, authData AuthData) (Resolution, error) {
	log := a.loggerFor(ctx).With(logger.Provider(a.name), logger.Path("token"))

	if authData.AccessToken == "" {
		log.Debug("rejected: no access token")
		return Resolution{}, invalidAuth(a.name)
	}

	user, err := a.provider.GetUserFromAccessToken(ctx, authData.AccessToken, authData)
	if err != nil {
		return Resolution{}, err
	}
	if err := a.checkIdentity(authData, user); err != nil {
		log.Info("rejected: identity mismatch")
		return Resolution{}, err
	}

	out := authData.Clone()
	if out.ID == "" {
		out.ID = user.ID
	}

	log.Debug("identity resolved", logger.IdentityID(user.ID))
	return Resolution{
		Identity: VerifiedIdentity{ID: user.ID},
		AuthData: out,
	}, nil
}

func (a *Adapter) resolveCode(ctx context.Context, authData AuthData) (Resolution, error) {
	log := a.loggerFor(ctx).With(logger.Provider(a.name), logger.Path("code"))

	if authData.Code == "" {
		log.Debug("rejected: no code")
		return Resolution{}, newError(KindValidation, a.name, "code is required")
	}

	accessToken, err := a.provider.GetAccessTokenFromCode(ctx, authData)
	if err != nil {
		return Resolution{}, err
	}

	user, err := a.provider.GetUserFromAccessToken(ctx, accessToken, authData)
	if err != nil {
		return Resolution{}, err
	}
	if err := a.checkIdentity(authData, user); err != nil {
		log.Info("rejected: identity mismatch")
		return Resolution{}, err
	}

	out := authData.Clone()
	out.AccessToken = accessToken
	out.ID = user.ID
	out.Code = ""
	out.RedirectURI = ""

	log.Debug("identity resolved", logger.IdentityID(user.ID))
	return Resolution{
		Identity: VerifiedIdentity{ID: user.ID},
		AuthData: out,
	}, nil
}

// checkIdentity rejects a missing remote identity and any claimed ID
// that does not match it.
func (a *Adapter) checkIdentity(authData AuthData, user *RemoteIdentity) error {
	if user == nil || user.ID == "" {
		return invalidAuth(a.name)
	}
	if authData.ID != "" && authData.ID != user.ID {
		return invalidAuth(a.name)
	}
	return nil
}

// ValidateLogin is called when signing in with an already linked identity.
// BeforeFind has already proved possession.
func (a *Adapter) ValidateLogin(authData AuthData) VerifiedIdentity {
	return VerifiedIdentity{ID: authData.ID}
}

// ValidateSetUp is called when the provider is first linked to an account.
func (a *Adapter) ValidateSetUp(authData AuthData) VerifiedIdentity {
	return VerifiedIdentity{ID: authData.ID}
}

// ValidateUpdate is called when stored auth data for this provider changed.
// Callers skip it, and BeforeFind, for unchanged data.
func (a *Adapter) ValidateUpdate(authData AuthData) VerifiedIdentity {
	return VerifiedIdentity{ID: authData.ID}
}

// AfterFind shapes stored auth data for a client read. Only the ID leaves.
func (a *Adapter) AfterFind(authData AuthData) VerifiedIdentity {
	return VerifiedIdentity{ID: authData.ID}
}

// ParseResponseData unwraps a callback-wrapped provider response.
func (a *Adapter) ParseResponseData(data string) (map[string]any, error) {
	var out map[string]any
	if err := unwrapJSONP(a.name, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
