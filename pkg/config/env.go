package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides 环境变量覆盖项
// 命令行参数优先于环境变量
type EnvOverrides struct {
	ConfigPath string `env:"BIRTHDAY_CONFIG"`
	LogLevel   string `env:"BIRTHDAY_LOG_LEVEL" envDefault:"info"`
	Verbose    bool   `env:"BIRTHDAY_VERBOSE"`
	Fullscreen bool   `env:"BIRTHDAY_FULLSCREEN"`
}

// LoadEnvOverrides 读取环境变量
func LoadEnvOverrides() (EnvOverrides, error) {
	overrides, err := env.ParseAs[EnvOverrides]()
	if err != nil {
		return EnvOverrides{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return overrides, nil
}
