package config

import "github.com/ilyakaznacheev/cleanenv"

type Config struct {
	Port         int    `env:"PORT" env-default:"8080"`
	JWTSecret    string `env:"JWT_SECRET"`
	SpeechKey    string `env:"AZURE_SPEECH_KEY"`
	SpeechRegion string `env:"AZURE_SPEECH_REGION"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read environment variables: " + err.Error())
	}

	return &cfg
}
