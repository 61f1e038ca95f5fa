package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// configFile is the name of the optional config file inside configDir.
const configFile = "config.toml"

// config holds user defaults loaded from the config file. Flags always
// override file values.
type config struct {
	Algorithm string `toml:"algorithm"` // default algorithm selector
	Separator string `toml:"separator"` // separator between elements in output
}

// defaultConfig returns the built-in defaults applied when no config file
// exists or a key is absent.
func defaultConfig() config {
	return config{
		Algorithm: "lex",
		Separator: " ",
	}
}

// loadConfig reads the user config file, layering its values over the
// built-in defaults. A missing file is not an error; a malformed one is.
func loadConfig() (config, error) {
	cfg := defaultConfig()

	dir, err := configDir()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var file config
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, err
	}
	if file.Algorithm != "" {
		cfg.Algorithm = file.Algorithm
	}
	if file.Separator != "" {
		cfg.Separator = file.Separator
	}
	return cfg, nil
}
