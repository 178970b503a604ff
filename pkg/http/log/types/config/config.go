package config

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var DefaultMaskedHeaderNames = []string{"Authorization", "Cookie", "Proxy-Authorization", "Set-Cookie"}

var DefaultHeaderExtractor = MakeMaskedHeaderExtractor(DefaultMaskedHeaderNames)

func MakeMaskedHeaderExtractor(maskedHeaderNames []string) func(http.Header) string {
	maskedNamesSet := make(map[string]struct{}, len(maskedHeaderNames))
	for _, name := range maskedHeaderNames {
		maskedNamesSet[http.CanonicalHeaderKey(name)] = struct{}{}
	}

	return func(header http.Header) string {
		if len(header) == 0 {
			return ""
		}

		names := make([]string, 0, len(header))
		for name := range header {
			names = append(names, name)
		}
		sort.Strings(names)

		var builder strings.Builder

		for _, name := range names {
			values := header[name]
			if _, ok := maskedNamesSet[http.CanonicalHeaderKey(name)]; ok {
				values = []string{"(REDACTED)"}
			}

			for _, value := range values {
				builder.WriteString(fmt.Sprintf("%s: %s\r\n", name, value))
			}
		}

		return strings.TrimSuffix(builder.String(), "\r\n")
	}
}

type Option func(configuration *Config)

type Config struct {
	HeaderExtractor func(http.Header) string
}

func New(options ...Option) *Config {
	config := &Config{
		HeaderExtractor: DefaultHeaderExtractor,
	}

	for _, option := range options {
		if option != nil {
			option(config)
		}
	}

	return config
}

func WithHeaderExtractor(headerExtractor func(http.Header) string) Option {
	return func(configuration *Config) {
		configuration.HeaderExtractor = headerExtractor
	}
}
