package envconfig

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// Parse fills cfg from the process environment, loading a .env file first
// when one is present. A missing .env is not an error. Warnings go to
// stderr because stdout carries only the rendered payload.
func Parse[T any](cfg *T) error {
	log.SetOutput(os.Stderr)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("unable to load .env file: %+v", err)
	}

	return env.Parse(cfg)
}
