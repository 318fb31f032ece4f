// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey    string `json:"jwt_secret"`
		TokenAlgorithm  string `json:"jwt_algo"`
		TokenExpiresMin int    `json:"jwt_expires_min"`
	} `json:"auth,omitempty"`

	Storage struct {
		DSN string `json:"database_url"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Summarizer struct {
		UseHF    bool     `json:"use_hf"`
		Model    string   `json:"hf_model"`
		Endpoint string   `json:"hf_endpoint"`
		APIToken string   `json:"hf_api_token"`
		Timeout  Duration `json:"hf_timeout"`
		CacheTTL Duration `json:"cache_ttl"`
	} `json:"summarizer,omitempty"`

	Workers struct {
		QueueBackend   string   `json:"queue_backend"`
		RedisAddr      string   `json:"redis_addr"`
		RedisPassword  string   `json:"redis_password"`
		RedisQueueKey  string   `json:"redis_queue_key"`
		RestartDelay   Duration `json:"restart_delay"`
		RequeueOnStart bool     `json:"requeue_on_start"`
	} `json:"workers,omitempty"`

	Version string `json:"version"`
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
			TokenSignKey:    jsonCfg.Auth.TokenSignKey,
			TokenAlgorithm:  jsonCfg.Auth.TokenAlgorithm,
			TokenExpiresMin: jsonCfg.Auth.TokenExpiresMin,
			Version:         jsonCfg.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Summarizer: Summarizer{
			UseHF:    jsonCfg.Summarizer.UseHF,
			Model:    jsonCfg.Summarizer.Model,
			Endpoint: jsonCfg.Summarizer.Endpoint,
			APIToken: jsonCfg.Summarizer.APIToken,
			Timeout:  time.Duration(jsonCfg.Summarizer.Timeout),
			CacheTTL: time.Duration(jsonCfg.Summarizer.CacheTTL),
		},
		Workers: Workers{
			QueueBackend:   jsonCfg.Workers.QueueBackend,
			RedisAddr:      jsonCfg.Workers.RedisAddr,
			RedisPassword:  jsonCfg.Workers.RedisPassword,
			RedisQueueKey:  jsonCfg.Workers.RedisQueueKey,
			RestartDelay:   time.Duration(jsonCfg.Workers.RestartDelay),
			RequeueOnStart: jsonCfg.Workers.RequeueOnStart,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
