package authadapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
)

// AuthData is the per-attempt payload a client submits for one provider.
// Code and RedirectURI are transient and must never be persisted.
type AuthData struct {
	ID          string
	AccessToken string
	Code        string
	RedirectURI string

	// Extra carries provider-specific fields not covered above.
	Extra map[string]any
}

const (
	keyID          = "id"
	keyAccessToken = "access_token"
	keyCode        = "code"
	keyRedirectURI = "redirect_uri"
)

// Clone returns a copy that shares no map with d.
func (d AuthData) Clone() AuthData {
	out := d
	if d.Extra != nil {
		out.Extra = maps.Clone(d.Extra)
	}
	return out
}

// Equal reports whether d and other carry the same fields. A nil and an
// empty Extra compare equal.
func (d AuthData) Equal(other AuthData) bool {
	if d.ID != other.ID || d.AccessToken != other.AccessToken ||
		d.Code != other.Code || d.RedirectURI != other.RedirectURI {
		return false
	}
	if len(d.Extra) == 0 && len(other.Extra) == 0 {
		return true
	}
	return reflect.DeepEqual(d.Extra, other.Extra)
}

// MarshalJSON flattens Extra alongside the well-known keys.
func (d AuthData) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(d.Extra)+4)
	for k, v := range d.Extra {
		if !isReservedKey(k) {
			m[k] = v
		}
	}
	if d.ID != "" {
		m[keyID] = d.ID
	}
	if d.AccessToken != "" {
		m[keyAccessToken] = d.AccessToken
	}
	if d.Code != "" {
		m[keyCode] = d.Code
	}
	if d.RedirectURI != "" {
		m[keyRedirectURI] = d.RedirectURI
	}
	return json.Marshal(m)
}

// UnmarshalJSON accepts string or numeric values for the well-known keys
// and keeps every other key in Extra.
func (d *AuthData) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	out := AuthData{}
	for k, v := range raw {
		if !isReservedKey(k) {
			if out.Extra == nil {
				out.Extra = make(map[string]any)
			}
			out.Extra[k] = v
			continue
		}

		s, err := scalarString(v)
		if err != nil {
			return fmt.Errorf("authdata %s: %w", k, err)
		}
		switch k {
		case keyID:
			out.ID = s
		case keyAccessToken:
			out.AccessToken = s
		case keyCode:
			out.Code = s
		case keyRedirectURI:
			out.RedirectURI = s
		}
	}

	*d = out
	return nil
}

func isReservedKey(k string) bool {
	switch k {
	case keyID, keyAccessToken, keyCode, keyRedirectURI:
		return true
	}
	return false
}

func scalarString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

// RemoteIdentity is what a provider returns for an access token.
// ID must be the provider's stable user identifier.
type RemoteIdentity struct {
	ID      string
	Profile map[string]any
}

// VerifiedIdentity is the only shape handed back to the account system or
// to clients. It never carries credentials.
type VerifiedIdentity struct {
	ID string `json:"id"`
}

// Resolution is the outcome of BeforeFind. AuthData is the sanitized record
// the caller should merge and persist in place of what it submitted.
type Resolution struct {
	Identity VerifiedIdentity
	AuthData AuthData
}
