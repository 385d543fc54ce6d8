package config

import (
	"errors"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Reader interface {
	Read() (*Config, error)
}

// EnvReader reads the process environment, after loading the optional
// dotenv files it was given.
type EnvReader struct {
	dotenvFiles []string
}

func NewEnvReader(dotenvFiles ...string) EnvReader {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	return EnvReader{dotenvFiles: dotenvFiles}
}

func (r EnvReader) Read() (*Config, error) {
	for _, file := range r.dotenvFiles {
		// variables already set in the environment win over the file
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
