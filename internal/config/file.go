package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// StructuredFileConfig is the on-disk shape of a config file. The same
// struct is decoded from JSON and TOML.
type StructuredFileConfig struct {
	Eagle struct {
		Address        string   `json:"address" toml:"address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"eagle,omitempty" toml:"eagle"`

	Log struct {
		Level      string `json:"level" toml:"level"`
		File       string `json:"file" toml:"file"`
		MaxSizeMB  int    `json:"max_size_mb" toml:"max_size_mb"`
		MaxBackups int    `json:"max_backups" toml:"max_backups"`
	} `json:"log,omitempty" toml:"log"`

	Scanner struct {
		Workers int `json:"workers" toml:"workers"`
	} `json:"scanner,omitempty" toml:"scanner"`

	Output string `json:"output" toml:"output"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".toml":
		err = toml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Eagle.Address,
			RequestTimeout: time.Duration(fileCfg.Eagle.RequestTimeout),
		},
		Log: Log{
			Level:      fileCfg.Log.Level,
			FilePath:   fileCfg.Log.File,
			MaxSizeMB:  fileCfg.Log.MaxSizeMB,
			MaxBackups: fileCfg.Log.MaxBackups,
		},
		Scanner: Scanner{
			Workers: fileCfg.Scanner.Workers,
		},
		Output: fileCfg.Output,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in JSON and TOML, and from integer nanoseconds in JSON.
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
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
