package internal

import "time"

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR,required=true"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	ChannelCapacity int           `env:"CHANNEL_CAPACITY,required=true"`
	KeepAlive       time.Duration `env:"KEEPALIVE_INTERVAL,required=true"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL,required=true"`

	ClassifierURL         string        `env:"CLASSIFIER_URL,required=true"`
	ClassifierTimeout     time.Duration `env:"CLASSIFIER_TIMEOUT,required=true"`
	CategorizationWorkers int           `env:"CATEGORIZATION_WORKERS,required=true"`
}
