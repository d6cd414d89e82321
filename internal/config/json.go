package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names for
// file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
		CORSOrigin  string `json:"cors_origin"`
	} `json:"server,omitempty"`

	External struct {
		TranslateBaseURL string   `json:"translate_base_url"`
		PredictBaseURL   string   `json:"predict_base_url"`
		RequestTimeout   Duration `json:"request_timeout"`
	} `json:"external,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: jsonCfg.App.TokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
			CORSOrigin:  jsonCfg.Server.CORSOrigin,
		},
		External: External{
			TranslateBaseURL: jsonCfg.External.TranslateBaseURL,
			PredictBaseURL:   jsonCfg.External.PredictBaseURL,
			RequestTimeout:   jsonCfg.External.RequestTimeout,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
