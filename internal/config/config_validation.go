package config

import "time"

// Defaults applied after all sources are merged. The token sign key fallback
// is insecure on purpose: existing deployments rely on it when JWT_SECRET is
// unset, and removing it is tracked as a deployment concern, not a code one.
const (
	defaultTokenSignKey  = "default-secret-key"
	defaultTokenDuration = 7 * 24 * time.Hour
	defaultTokenIssuer   = "signbridge"

	defaultHTTPAddress = ":5000"
	defaultCORSOrigin  = "http://localhost:5174"

	defaultTranslateBaseURL = "https://api.mymemory.translated.net"
	defaultPredictBaseURL   = "http://localhost:5001"
	defaultExternalTimeout  = 15 * time.Second
)

// applyDefaults fills every still-zero field of the merged configuration with
// its documented default value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = defaultTokenSignKey
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = Duration(defaultTokenDuration)
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.CORSOrigin == "" {
		cfg.Server.CORSOrigin = defaultCORSOrigin
	}

	if cfg.External.TranslateBaseURL == "" {
		cfg.External.TranslateBaseURL = defaultTranslateBaseURL
	}
	if cfg.External.PredictBaseURL == "" {
		cfg.External.PredictBaseURL = defaultPredictBaseURL
	}
	if cfg.External.RequestTimeout == 0 {
		cfg.External.RequestTimeout = Duration(defaultExternalTimeout)
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
