// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the default
// .env file (if any) is read once per process, optional extra env files are read on
// demand, and the environment is then parsed into any struct annotated with env tags.
//
// # Usage
//
//	type Config struct {
//	    Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    DefaultDuration time.Duration `env:"TOAST_DEFAULT_DURATION" envDefault:"0s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot start without.
//
// Variables already present in the environment always win over values from
// env files.
package config
