package internal

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tubely/tubely_server/internal/media"
	"github.com/tubely/tubely_server/internal/storage"
	"github.com/tubely/tubely_server/internal/user"
)

type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Config struct {
	Server  ServerConfig   `mapstructure:"server"`
	Auth    user.Config    `mapstructure:"auth"`
	Media   media.Config   `mapstructure:"media"`
	Assets  storage.Config `mapstructure:"assets"`
	Objects storage.Config `mapstructure:"objects"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile("files/config.yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}
