package json_resolver_config

import (
	fetchTypesErrorMapper "github.com/Motmedel/fetch_go/pkg/http/fetch/types/error_mapper"
	fetchTypesSuccessChecker "github.com/Motmedel/fetch_go/pkg/http/fetch/types/success_checker"
)

type Option func(*Config)

type Config struct {
	SuccessChecker fetchTypesSuccessChecker.SuccessChecker
	ErrorMapper    fetchTypesErrorMapper.Mapper
}

func New(options ...Option) *Config {
	config := &Config{
		SuccessChecker: fetchTypesSuccessChecker.Default,
		ErrorMapper:    fetchTypesErrorMapper.Default,
	}

	for _, option := range options {
		if option != nil {
			option(config)
		}
	}

	return config
}

func WithSuccessChecker(successChecker fetchTypesSuccessChecker.SuccessChecker) Option {
	return func(configuration *Config) {
		configuration.SuccessChecker = successChecker
	}
}

func WithErrorMapper(errorMapper fetchTypesErrorMapper.Mapper) Option {
	return func(configuration *Config) {
		configuration.ErrorMapper = errorMapper
	}
}
