// Package config loads configuration structs from environment variables.
//
// It is a thin layer over github.com/caarlos0/env that loads a .env file
// once per process (missing files are fine) before parsing, so local
// development and production share the same code path.
//
// # Usage
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics on failure and suits configuration the application cannot
// start without.
package config
