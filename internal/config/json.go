package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SetupJSONConfig is the layout of the optional JSON settings file.
type SetupJSONConfig struct {
	Claude struct {
		ConfigPath string `json:"config_path"`
		ServerName string `json:"server_name"`
	} `json:"claude,omitempty"`

	Package struct {
		Name       string `json:"name"`
		ScriptPath string `json:"script_path"`
		Packaged   string `json:"packaged"`
	} `json:"package,omitempty"`

	Registry struct {
		Method    string   `json:"method"`
		URL       string   `json:"url"`
		NPMBinary string   `json:"npm_binary"`
		Timeout   Duration `json:"timeout"`
	} `json:"registry,omitempty"`

	Log struct {
		File   string `json:"file"`
		Format string `json:"format"`
	} `json:"log,omitempty"`

	Backup bool `json:"backup"`
}

func parseJSON(jsonFilePath string) (*SetupConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg SetupJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &SetupConfig{
		Claude: Claude{
			ConfigPath: jsonCfg.Claude.ConfigPath,
			ServerName: jsonCfg.Claude.ServerName,
		},
		Package: Package{
			Name:       jsonCfg.Package.Name,
			ScriptPath: jsonCfg.Package.ScriptPath,
			Packaged:   jsonCfg.Package.Packaged,
		},
		Registry: Registry{
			Method:    jsonCfg.Registry.Method,
			URL:       jsonCfg.Registry.URL,
			NPMBinary: jsonCfg.Registry.NPMBinary,
			Timeout:   time.Duration(jsonCfg.Registry.Timeout),
		},
		Log: Log{
			File:   jsonCfg.Log.File,
			Format: jsonCfg.Log.Format,
		},
		Run:          Run{Backup: jsonCfg.Backup},
		JSONFilePath: "",
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
