package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"iface":     "monitor.iface",
	"sort":      "monitor.sort",
	"interval":  "monitor.interval",
	"unit":      "monitor.unit",
	"log-level": "log.level",
	"log-file":  "log.file",
	"docker":    "docker.enabled",
}

// Load resolves defaults, the config file, IFMON_* environment variables
// and any flags in fs that the user set, in increasing priority.
// An empty configFile searches ., $HOME/.config/ifmon and /etc/ifmon.
func Load(configFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("ifmon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ifmon"))
		}
		v.AddConfigPath("/etc/ifmon/")
	}

	v.SetEnvPrefix("IFMON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("monitor.iface", "")
	v.SetDefault("monitor.sort", "total")
	v.SetDefault("monitor.interval", 1)
	v.SetDefault("monitor.unit", "bytes")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")

	v.SetDefault("docker.enabled", false)
	v.SetDefault("docker.host", "")
	v.SetDefault("docker.timeout", "5s")
}
