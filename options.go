package securetx

import "io"

// config holds per-call configuration for Construct and Verify.
type config struct {
	rand  io.Reader
	suite Suite
}

// Option configures a Construct or Verify call.
type Option func(*config)

// WithRand sets the random source used for key, salt, and IV generation.
// Intended for deterministic tests; production callers should leave the
// default (crypto/rand). Ignored when WithSuite is also given.
func WithRand(r io.Reader) Option {
	return func(c *config) {
		c.rand = r
	}
}

// WithSuite substitutes the cryptographic primitive set.
func WithSuite(s Suite) Option {
	return func(c *config) {
		c.suite = s
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.suite == nil {
		cfg.suite = &stdSuite{rand: cfg.rand}
	}
	return cfg
}
