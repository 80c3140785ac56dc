// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Backend struct {
		RequestTimeout Duration `json:"request_timeout"`
		MaxRetries     *int     `json:"max_retries"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
		EnvFile        string   `json:"env_file"`
		WarmUp         bool     `json:"warm_up"`
	} `json:"backend,omitempty"`

	Storage struct {
		Session struct {
			DSN string `json:"dsn"`
		} `json:"session,omitempty"`
	} `json:"storage,omitempty"`

	Proxy struct {
		Webhooks       map[string]string `json:"webhooks"`
		AllowedOrigins []string          `json:"allowed_origins"`
		Timeout        Duration          `json:"timeout"`
	} `json:"proxy,omitempty"`

	Navigation struct {
		AdminRoles []string `json:"admin_roles"`
	} `json:"navigation,omitempty"`
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
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Backend: Backend{
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
			MaxRetries:     jsonCfg.Backend.MaxRetries,
			RetryBaseDelay: time.Duration(jsonCfg.Backend.RetryBaseDelay),
			EnvFile:        jsonCfg.Backend.EnvFile,
			WarmUp:         jsonCfg.Backend.WarmUp,
		},
		Storage: Storage{
			Session: Session{DSN: jsonCfg.Storage.Session.DSN},
		},
		Proxy: Proxy{
			Webhooks:       jsonCfg.Proxy.Webhooks,
			AllowedOrigins: jsonCfg.Proxy.AllowedOrigins,
			Timeout:        time.Duration(jsonCfg.Proxy.Timeout),
		},
		Navigation: Navigation{
			AdminRoles: jsonCfg.Navigation.AdminRoles,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
