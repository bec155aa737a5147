package main

import "time"

type Config struct {
	BufferSize      int           `env:"BUFFER_SIZE,default=64"`
	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=2"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	ConfigFilepath  string        `env:"CONFIG_FILEPATH,default=config.yml"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	ProviderName    string        `env:"PROVIDER_NAME,default=metadata"`
	Colours         bool          `env:"COLOURS,default=true"`
}
