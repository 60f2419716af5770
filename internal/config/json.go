package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the file named by -c/-config. The
// port and the two keys sit at the top level, the rest is grouped:
//
//	{
//	  "port": 8080,
//	  "secret": "s3cr3t",
//	  "server": {"request_timeout": "10s"},
//	  "storage": {"driver": "sqlite", "db": {"dsn": "/var/lib/jca.db"}}
//	}
type StructuredJSONConfig struct {
	Port     int    `json:"port"`
	Secret   string `json:"secret"`
	HashKey  string `json:"hash_key"`
	LogLevel string `json:"log_level"`

	Server  jsonServer  `json:"server,omitempty"`
	Storage jsonStorage `json:"storage,omitempty"`
}

type jsonServer struct {
	HTTPAddress    string   `json:"address"`
	RequestTimeout Duration `json:"request_timeout"`
	MaxBodyBytes   int64    `json:"max_body_bytes"`
}

type jsonStorage struct {
	Driver     string `json:"driver"`
	Collection string `json:"collection"`
	DB         struct {
		DSN string `json:"dsn"`
	} `json:"db,omitempty"`
	Remote struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: error reading a json file: %w", err)
	}

	var fileCfg StructuredJSONConfig
	if err = json.Unmarshal(raw, &fileCfg); err != nil {
		return nil, fmt.Errorf("config: error decoding json configs in %s: %w", path, err)
	}

	return fileCfg.structured(), nil
}

// structured converts the file layout into a config layer. JSONFilePath is
// left empty so the file cannot point at another file.
func (c StructuredJSONConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{Secret: c.Secret, HashKey: c.HashKey, LogLevel: c.LogLevel},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			Port:           c.Port,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
			MaxBodyBytes:   c.Server.MaxBodyBytes,
		},
		Storage: Storage{
			Driver:     c.Storage.Driver,
			Collection: c.Storage.Collection,
			DB:         DB{DSN: c.Storage.DB.DSN},
			Remote: Remote{
				Address:        c.Storage.Remote.Address,
				RequestTimeout: time.Duration(c.Storage.Remote.RequestTimeout),
			},
		},
	}
}

// Duration accepts either a Go duration string ("1h", "30s") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or a number of nanoseconds: %w", err)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
