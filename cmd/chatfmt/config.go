package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/database"
)

type Config struct {
	// CHATFMT_BADGER_FILEPATH is the metadata store shared with the formatter
	BadgerFilepath string `envconfig:"BADGER_FILEPATH"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"WARN"`
	// CHATFMT_COLOURS renders colour codes as ANSI sequences
	Colours bool `envconfig:"COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("chatfmt", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.BadgerFilepath == "" {
		cfg.BadgerFilepath = database.DefaultPath
	}
	return cfg, nil
}
