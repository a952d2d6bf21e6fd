package authadapter

// Options holds the settings for one provider instance.
type Options struct {
	// EnableInsecureAuth allows clients to submit a pre-obtained access
	// token instead of an authorization code.
	EnableInsecureAuth bool   `yaml:"enableInsecureAuth" json:"enableInsecureAuth"`
	ClientID           string `yaml:"clientId" json:"clientId"`
	ClientSecret       string `yaml:"clientSecret" json:"clientSecret"`
}

// ValidateOptions checks opts for the adapter called name.
// Client credentials are only required when insecure mode is off.
func ValidateOptions(name string, opts *Options) error {
	if opts == nil {
		return newError(KindConfiguration, name, "options are required")
	}

	if opts.EnableInsecureAuth {
		return nil
	}

	if opts.ClientID == "" {
		return newError(KindConfiguration, name, "clientId is required")
	}

	if opts.ClientSecret == "" {
		return newError(KindConfiguration, name, "clientSecret is required")
	}

	return nil
}
