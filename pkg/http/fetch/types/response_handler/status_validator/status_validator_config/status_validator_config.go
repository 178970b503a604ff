package status_validator_config

const (
	DefaultMinimumStatusCode = 100
	DefaultMaximumStatusCode = 599
)

type Option func(*Config)

type Config struct {
	MinimumStatusCode int
	MaximumStatusCode int
}

func New(options ...Option) *Config {
	config := &Config{
		MinimumStatusCode: DefaultMinimumStatusCode,
		MaximumStatusCode: DefaultMaximumStatusCode,
	}

	for _, option := range options {
		if option != nil {
			option(config)
		}
	}

	return config
}

func WithMinimumStatusCode(minimumStatusCode int) Option {
	return func(configuration *Config) {
		configuration.MinimumStatusCode = minimumStatusCode
	}
}

func WithMaximumStatusCode(maximumStatusCode int) Option {
	return func(configuration *Config) {
		configuration.MaximumStatusCode = maximumStatusCode
	}
}
