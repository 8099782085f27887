package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the JSON config file schema:
//
//	{
//	  "server": "https://books.example.com",
//	  "token": "abc123",
//	  "device_id": "…",
//	  "request_timeout": "30s",
//	  "state_dir": "~/.readersim",
//	  "state_file": "",
//	  "max_pages": 200,
//	  "guard_window": 3
//	}
type StructuredJSONConfig struct {
	Server         string   `json:"server"`
	Token          string   `json:"token"`
	DeviceID       string   `json:"device_id"`
	RequestTimeout Duration `json:"request_timeout"`
	StateDir       string   `json:"state_dir"`
	StateFile      string   `json:"state_file"`
	MaxPages       int      `json:"max_pages"`
	GuardWindow    int      `json:"guard_window"`
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

	return &StructuredConfig{
		Server: Server{
			URL:            jsonCfg.Server,
			AuthToken:      jsonCfg.Token,
			DeviceID:       jsonCfg.DeviceID,
			RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
		},
		Sync: Sync{
			MaxPages:    jsonCfg.MaxPages,
			GuardWindow: jsonCfg.GuardWindow,
		},
		Storage: Storage{
			StateDir:  jsonCfg.StateDir,
			StateFile: jsonCfg.StateFile,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
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
