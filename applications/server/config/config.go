package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const defaultPort = "3000"

type Server struct {
	API        Api    `yaml:"api"`
	Upload     Upload `yaml:"upload"`
	Production bool   `yaml:"production"`
}

type Api struct {
	HTTPAddr string `yaml:"http_addr"`
}

type Upload struct {
	// Endpoint is the fixed CDN upload URL every accepted file is relayed to.
	Endpoint string `yaml:"endpoint"`
}

// Parse reads the optional YAML config and applies ENV overrides
// (PORT, UPLOAD_ENDPOINT, PRODUCTION) on top.
func Parse(path string) (Server, error) {
	cfg := Server{
		API: Api{HTTPAddr: "0.0.0.0:" + defaultPort},
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Server{}, fmt.Errorf("can't read config file: %w", err)
		}
		if err = yaml.Unmarshal(b, &cfg); err != nil {
			return Server{}, fmt.Errorf("can't parse config file: %w", err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.API.HTTPAddr = "0.0.0.0:" + v
	}
	if v := os.Getenv("UPLOAD_ENDPOINT"); v != "" {
		cfg.Upload.Endpoint = v
	}
	if v := os.Getenv("PRODUCTION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Server{}, fmt.Errorf("can't parse PRODUCTION value %q: %w", v, err)
		}
		cfg.Production = b
	}

	return cfg, nil
}

func (s Server) Validate() error {
	if s.API.HTTPAddr == "" {
		return errors.New("api.http_addr is not set")
	}

	if s.Upload.Endpoint == "" {
		return errors.New("upload.endpoint is not set (or set UPLOAD_ENDPOINT)")
	}
	if _, err := url.ParseRequestURI(s.Upload.Endpoint); err != nil {
		return fmt.Errorf("upload.endpoint is not a valid URL: %w", err)
	}

	return nil
}
