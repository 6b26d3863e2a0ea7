package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// cliConfig holds the demo's configuration surface.
type cliConfig struct {
	SwipeEnabled  bool   `mapstructure:"swipe-enabled"`
	DiagonalSwipe bool   `mapstructure:"diagonal-swipe"`
	BarHeight     int    `mapstructure:"bar-height"`
	AnimationFPS  int    `mapstructure:"animation-fps"`
	Skin          string `mapstructure:"skin"`
	Replay        string `mapstructure:"replay"`
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "swipetabs")
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	v := viper.New()
	v.SetEnvPrefix("SWIPETABS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("swipe-enabled", true)
	v.SetDefault("diagonal-swipe", false)
	v.SetDefault("bar-height", 1)
	v.SetDefault("animation-fps", 60)
	v.SetDefault("skin", "")
	v.SetDefault("replay", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir(), "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}
