package config

import "context"

type Loader interface {
	Load(ctx context.Context, selection Selection) (Config, error)
}

type Validator interface {
	Validate(ctx context.Context, cfg Config) error
}

type Service interface {
	Loader
	Validator
}
