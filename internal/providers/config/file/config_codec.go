package file

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/crmarques/heckler-report/config"
	"go.yaml.in/yaml/v3"
)

func decodeConfigFile(path string) (config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, err
	}
	return decodeConfig(data)
}

func decodeConfig(data []byte) (config.Config, error) {
	var cfg config.Config

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return config.Config{}, nil
		}
		return config.Config{}, validationError("invalid config yaml", err)
	}

	return cfg, nil
}

// resolveConfigPath reports whether the path was chosen explicitly, in
// which case it must exist.
func resolveConfigPath(explicitPath string, defaultPath string, getenv func(string) string) (string, bool, error) {
	path := strings.TrimSpace(explicitPath)
	if path == "" {
		path = strings.TrimSpace(getenv(config.ConfigFileEnvVar))
	}
	if path == "" {
		return defaultPath, false, nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", true, internalError("failed to resolve user home directory", err)
		}
		path = filepath.Join(homeDir, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}

	cleanPath := filepath.Clean(path)
	if cleanPath == "." {
		return "", true, validationError("config path is invalid", errors.New("resolved to current directory"))
	}
	return cleanPath, true, nil
}
