package fetch_config

import (
	"net/http"

	fetchTypesErrorMapper "github.com/Motmedel/fetch_go/pkg/http/fetch/types/error_mapper"
	"github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler/content_type_validator/content_type_validator_config"
	fetchTypesSuccessChecker "github.com/Motmedel/fetch_go/pkg/http/fetch/types/success_checker"
)

type Option func(*Config)

const (
	DefaultMethod = "GET"
)

type Config struct {
	Method                       string
	Headers                      map[string]string
	Body                         []byte
	HttpClient                   *http.Client
	ExpectedContentTypeSubstring string
	SuccessChecker               fetchTypesSuccessChecker.SuccessChecker
	ErrorMapper                  fetchTypesErrorMapper.Mapper
}

func New(options ...Option) *Config {
	config := &Config{
		Method:                       DefaultMethod,
		HttpClient:                   http.DefaultClient,
		ExpectedContentTypeSubstring: content_type_validator_config.DefaultExpectedContentTypeSubstring,
		SuccessChecker:               fetchTypesSuccessChecker.Default,
		ErrorMapper:                  fetchTypesErrorMapper.Default,
	}

	for _, option := range options {
		if option != nil {
			option(config)
		}
	}

	return config
}

func WithMethod(method string) Option {
	return func(configuration *Config) {
		configuration.Method = method
	}
}

func WithHeaders(headers map[string]string) Option {
	return func(configuration *Config) {
		configuration.Headers = headers
	}
}

func WithBody(body []byte) Option {
	return func(configuration *Config) {
		configuration.Body = body
	}
}

func WithHttpClient(httpClient *http.Client) Option {
	return func(configuration *Config) {
		configuration.HttpClient = httpClient
	}
}

func WithExpectedContentTypeSubstring(expectedContentTypeSubstring string) Option {
	return func(configuration *Config) {
		configuration.ExpectedContentTypeSubstring = expectedContentTypeSubstring
	}
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
