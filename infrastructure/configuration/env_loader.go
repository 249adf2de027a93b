package configuration

import (
	"github.com/joho/godotenv"
)

// LoadEnvFromFile loads KEY=VALUE pairs from one or more dotenv files (e.g.,
// config.env, .env). Missing files are skipped and existing env vars are not
// overridden.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
}
