package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvFileName is the optional settings file read from the working
// directory and from next to the setup binary.
const DotEnvFileName = ".env"

// LoadDotEnv exports the variables of every existing file in paths into the
// process environment. Variables that are already set win, so a real
// environment always overrides a file. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("error loading env file %s: %w", path, err)
		}
	}

	return nil
}
