// Package config loads the TOML configuration of the application
// shell. A missing file yields the defaults, a malformed one is an
// error.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Camera struct {
	FOV  float64 `toml:"fov"`
	Near float64 `toml:"near"`
	Far  float64 `toml:"far"`
}

type Inspect struct {
	// Addr enables the HTTP scene inspector when non-empty.
	Addr string `toml:"addr"`
}

type Config struct {
	Window     Window     `toml:"window"`
	Camera     Camera     `toml:"camera"`
	ClearColor [3]float64 `toml:"clear_color"`
	Inspect    Inspect    `toml:"inspect"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "rowan",
			Width:  1024,
			Height: 768,
		},
		Camera: Camera{
			FOV:  60,
			Near: 0.1,
			Far:  100,
		},
		ClearColor: [3]float64{0.1, 0.1, 0.1},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %q", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %q", path)
	}

	return cfg, nil
}
