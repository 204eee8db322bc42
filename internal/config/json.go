package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
// Durations accept both strings ("30s") and nanosecond numbers.
type StructuredJSONConfig struct {
	API struct {
		PublicURL         string   `json:"public_url"`
		BackendURL        string   `json:"backend_url"`
		DefaultURL        string   `json:"default_url"`
		Timeout           Duration `json:"timeout"`
		ProductionDomains []string `json:"production_domains"`
		LocalHosts        []string `json:"local_hosts"`
	} `json:"api,omitempty"`

	Gateway struct {
		Runtime           string   `json:"runtime"`
		LoginPath         string   `json:"login_path"`
		RedirectDelay     Duration `json:"redirect_delay"`
		SessionRetries    int      `json:"session_retries"`
		SessionRetryDelay Duration `json:"session_retry_delay"`
		StrictReads       bool     `json:"strict_reads"`
	} `json:"gateway,omitempty"`

	Session struct {
		Profile  string   `json:"profile"`
		Endpoint string   `json:"endpoint"`
		SealKey  string   `json:"seal_key"`
		CacheTTL Duration `json:"cache_ttl"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
		RefreshBefore   Duration `json:"refresh_before"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			PublicURL:         j.API.PublicURL,
			BackendURL:        j.API.BackendURL,
			DefaultURL:        j.API.DefaultURL,
			Timeout:           time.Duration(j.API.Timeout),
			ProductionDomains: j.API.ProductionDomains,
			LocalHosts:        j.API.LocalHosts,
		},
		Gateway: Gateway{
			Runtime:           j.Gateway.Runtime,
			LoginPath:         j.Gateway.LoginPath,
			RedirectDelay:     time.Duration(j.Gateway.RedirectDelay),
			SessionRetries:    j.Gateway.SessionRetries,
			SessionRetryDelay: time.Duration(j.Gateway.SessionRetryDelay),
			StrictReads:       j.Gateway.StrictReads,
		},
		Session: Session{
			Profile:  j.Session.Profile,
			Endpoint: j.Session.Endpoint,
			SealKey:  j.Session.SealKey,
			CacheTTL: time.Duration(j.Session.CacheTTL),
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Redis: Redis{
				Address:  j.Storage.Redis.Address,
				Password: j.Storage.Redis.Password,
				DB:       j.Storage.Redis.DB,
			},
		},
		Server: Server{HTTPAddress: j.Server.HTTPAddress},
		Workers: Workers{
			RefreshInterval: time.Duration(j.Workers.RefreshInterval),
			RefreshBefore:   time.Duration(j.Workers.RefreshBefore),
		},
		Log: Log{
			Level: j.Log.Level,
			File:  j.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
