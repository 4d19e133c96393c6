package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	ServeRESTAddress string  `envconfig:"serve_rest_address" default:":8080"`
	DatabaseDSN      string  `envconfig:"database_dsn" default:"restaurante:restaurante@tcp(127.0.0.1:3306)/restaurante?parseTime=true"`
	MigrationsDir    string  `envconfig:"migrations_dir" default:"data/migrations"`
	LogJSON          bool    `envconfig:"log_json" default:"false"`
	RateLimitRPS     float64 `envconfig:"rate_limit_rps" default:"0"`
	RateLimitBurst   int     `envconfig:"rate_limit_burst" default:"0"`
}

func Parse(prefix string) (*Config, error) {
	c := new(Config)
	if err := envconfig.Process(prefix, c); err != nil {
		return nil, err
	}
	return c, nil
}
