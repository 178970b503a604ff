package content_type_validator_config

const DefaultExpectedContentTypeSubstring = "application/json"

type Option func(*Config)

type Config struct {
	ExpectedContentTypeSubstring string
}

func New(options ...Option) *Config {
	config := &Config{
		ExpectedContentTypeSubstring: DefaultExpectedContentTypeSubstring,
	}

	for _, option := range options {
		if option != nil {
			option(config)
		}
	}

	return config
}

func WithExpectedContentTypeSubstring(expectedContentTypeSubstring string) Option {
	return func(configuration *Config) {
		configuration.ExpectedContentTypeSubstring = expectedContentTypeSubstring
	}
}
