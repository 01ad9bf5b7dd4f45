package file

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/crmarques/heckler-report/config"
	"github.com/crmarques/heckler-report/faults"
)

var _ config.Service = (*FileConfigService)(nil)

// FileConfigService loads the hook configuration from a YAML file and
// layers the environment and explicit overrides on top of it.
type FileConfigService struct {
	defaultPath string
	getenv      func(string) string
}

type Option func(*FileConfigService)

// WithEnvLookup replaces os.Getenv.
func WithEnvLookup(getenv func(string) string) Option {
	return func(s *FileConfigService) {
		if getenv != nil {
			s.getenv = getenv
		}
	}
}

// WithDefaultPath replaces the fallback config location.
func WithDefaultPath(path string) Option {
	return func(s *FileConfigService) { s.defaultPath = path }
}

func NewFileConfigService(opts ...Option) *FileConfigService {
	s := &FileConfigService{defaultPath: config.DefaultConfigPath, getenv: os.Getenv}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileConfigService) Load(_ context.Context, selection config.Selection) (config.Config, error) {
	path, explicit, err := resolveConfigPath(selection.Path, s.defaultPath, s.getenv)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := decodeConfigFile(path)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist) && !explicit:
			cfg = config.Config{}
		case errors.Is(err, os.ErrNotExist):
			return config.Config{}, notFoundError(fmt.Sprintf("config file %s not found", path))
		case faults.IsCategory(err, faults.ValidationError):
			return config.Config{}, err
		default:
			return config.Config{}, internalError(fmt.Sprintf("failed to read config file %s", path), err)
		}
	}

	cfg = applyEnvironment(cfg, s.getenv)
	cfg = applyOverrides(cfg, selection.Overrides)
	cfg = applyConfigDefaults(normalizeConfig(cfg))

	if err := validateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (s *FileConfigService) Validate(_ context.Context, cfg config.Config) error {
	return validateConfig(applyConfigDefaults(normalizeConfig(cfg)))
}

func validationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}

func notFoundError(message string) error {
	return faults.NewTypedError(faults.NotFoundError, message, nil)
}

func internalError(message string, cause error) error {
	return faults.NewTypedError(faults.InternalError, message, cause)
}
