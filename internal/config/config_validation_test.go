package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultTokenSignKey, cfg.App.TokenSignKey)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration.Std())
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultCORSOrigin, cfg.Server.CORSOrigin)
	assert.Equal(t, defaultTranslateBaseURL, cfg.External.TranslateBaseURL)
	assert.Equal(t, defaultPredictBaseURL, cfg.External.PredictBaseURL)
	assert.Equal(t, defaultExternalTimeout, cfg.External.RequestTimeout.Std())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  "explicit-secret",
			TokenDuration: Duration(time.Hour),
		},
		Server: Server{HTTPAddress: ":9090"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "explicit-secret", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration.Std())
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, defaultCORSOrigin, cfg.Server.CORSOrigin)
}

func TestValidate(t *testing.T) {
	valid := &StructuredConfig{}
	valid.Storage.DB.DSN = "postgres://localhost:5432/signbridge"
	valid.applyDefaults()
	require.NoError(t, valid.validate())

	noDSN := &StructuredConfig{}
	noDSN.applyDefaults()
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	badDuration := &StructuredConfig{}
	badDuration.Storage.DB.DSN = "postgres://localhost:5432/signbridge"
	badDuration.App.TokenDuration = Duration(-time.Hour)
	badDuration.applyDefaults()
	assert.ErrorIs(t, badDuration.validate(), ErrInvalidAppConfigs)
}
