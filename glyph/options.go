package glyph

// Option configures Source creation.
type Option func(*sourceConfig)

// sourceConfig holds configuration for Source.
type sourceConfig struct {
	backendName string
	cacheLimit  int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		backendName: defaultBackendName,
		cacheLimit:  128,
	}
}

// WithCacheLimit sets the maximum number of cached extracted outlines.
// A value of 0 or less disables caching.
func WithCacheLimit(n int) Option {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithBackend specifies the font parsing backend by registry name. The
// default is "ximage" which uses golang.org/x/image/font/sfnt; "gotext"
// selects the github.com/go-text/typesetting backend.
//
// Custom backends can be registered with RegisterBackend.
func WithBackend(name string) Option {
	return func(c *sourceConfig) {
		c.backendName = name
	}
}
