package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env-default:"9090"`
	Redis    Redis   `yaml:"redis"`
	Dataset  Dataset `yaml:"dataset"`
	Engine   Engine  `yaml:"engine"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type Dataset struct {
	Kind string `yaml:"kind" env-default:"csv"`
	Path string `yaml:"path" env-default:"data/players.csv"`
}

type Engine struct {
	Attempts          int     `yaml:"attempts" env-default:"200"`
	RetryAttempts     int     `yaml:"retry-attempts" env-default:"50"`
	CenterProbability float64 `yaml:"center-probability" env-default:"0.7"`
	CornerProbability float64 `yaml:"corner-probability" env-default:"0.6"`
	OpponentDelayMS   int     `yaml:"opponent-delay-ms" env-default:"600"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
