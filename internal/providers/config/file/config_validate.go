package file

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/crmarques/heckler-report/config"
	"github.com/crmarques/heckler-report/internal/logging"
)

func validateConfig(cfg config.Config) error {
	if cfg.ReportDir == "" {
		return validationError("report-dir must be set", nil)
	}
	if !filepath.IsAbs(cfg.ReportDir) {
		return validationError(fmt.Sprintf("report-dir %q must be an absolute path", cfg.ReportDir), nil)
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return validationError("logging.level must be one of debug, info, warn, error", err)
	}
	if !logging.ValidFormat(cfg.Logging.Format) {
		return validationError(fmt.Sprintf("logging.format %q must be one of json, console", cfg.Logging.Format), nil)
	}
	if cfg.CodeRepository != nil && cfg.CodeRepository.BaseDir == "" {
		return validationError("code-repository.base-dir must be set when code-repository is configured", nil)
	}
	return nil
}

func normalizeConfig(cfg config.Config) config.Config {
	cfg.ReportDir = normalizePath(cfg.ReportDir)
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Metrics.Textfile = normalizePath(cfg.Metrics.Textfile)
	if cfg.CodeRepository != nil {
		cfg.CodeRepository = &config.CodeRepository{BaseDir: normalizePath(cfg.CodeRepository.BaseDir)}
	}
	return cfg
}

func applyConfigDefaults(cfg config.Config) config.Config {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = config.DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = config.DefaultLogFormat
	}
	return cfg
}

func applyEnvironment(cfg config.Config, getenv func(string) string) config.Config {
	return applyOverrides(cfg, config.Overrides{
		ReportDir: getenv(config.ReportDirEnvVar),
		LogLevel:  getenv(config.LogLevelEnvVar),
		LogFormat: getenv(config.LogFormatEnvVar),
	})
}

func applyOverrides(cfg config.Config, overrides config.Overrides) config.Config {
	if value := strings.TrimSpace(overrides.ReportDir); value != "" {
		cfg.ReportDir = value
	}
	if value := strings.TrimSpace(overrides.LogLevel); value != "" {
		cfg.Logging.Level = value
	}
	if value := strings.TrimSpace(overrides.LogFormat); value != "" {
		cfg.Logging.Format = value
	}
	if value := strings.TrimSpace(overrides.MetricsTextfile); value != "" {
		cfg.Metrics.Textfile = value
	}
	if value := strings.TrimSpace(overrides.CodeRepository); value != "" {
		cfg.CodeRepository = &config.CodeRepository{BaseDir: value}
	}
	return cfg
}

func normalizePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	return filepath.Clean(trimmed)
}
