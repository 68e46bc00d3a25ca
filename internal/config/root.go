// root.go decides which directory mdfiles serves.
//
// Separated from config.go because the root is the one setting that has
// more sources than the config file: a command-line flag and two
// environment variables, the second kept for deployments configured for
// the older FILE_MANAGER_DATA_PATH name.

package config

import "os"

// Environment variables consulted for the root directory, in order.
const (
	EnvRoot       = "MDFILES_ROOT"
	EnvLegacyRoot = "FILE_MANAGER_DATA_PATH"
)

// ResolveRoot returns the root directory to serve. Precedence: flag, then
// MDFILES_ROOT, then FILE_MANAGER_DATA_PATH, then the config file, then
// ./Data.
func ResolveRoot(flag string, cfg *Config) string {
	if flag != "" {
		return flag
	}
	for _, env := range []string{EnvRoot, EnvLegacyRoot} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	if cfg == nil {
		return DefaultRoot
	}
	return cfg.RootDir()
}
