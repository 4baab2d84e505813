package envconfig

import "github.com/caarlos0/env/v11"

type authEnv struct {
	// Empty disables the x-api-key check on the update endpoint.
	APIKey string `env:"PRICES_API_KEY"`
}

type auth struct {
	raw authEnv
}

func NewAuthConfig() (*auth, error) {
	var raw authEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &auth{raw: raw}, nil
}

func (cfg *auth) APIKey() string { return cfg.raw.APIKey }
