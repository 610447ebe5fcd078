package runtime

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk runtime configuration, usually fern.toml.
type Config struct {
	Heap HeapConfig `toml:"heap"`
}

type HeapConfig struct {
	// Capacity bounds the number of value slots. Zero means unbounded.
	Capacity int `toml:"capacity"`

	Debug bool `toml:"debug"`
}

func DefaultConfig() Config {
	return Config{}
}

// LoadConfig parses a TOML runtime configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read %s: %w", path, err)
	}

	config := DefaultConfig()
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("parse error in %s: %w", path, err)
	}

	return config, nil
}
