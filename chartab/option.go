package chartab

import "github.com/go-msym/pointgroup/pgtypes"

// config collects the options Generate accepts: an optional trace hook and
// the numeric thresholds used during verification.
type config struct {
	trace      func(string, ...any)
	thresholds []pgtypes.ThresholdOption
}

// Option configures a Generate call.
type Option func(*config)

// WithTrace installs a hook invoked with one human-readable line per
// generated row, replacing the C source's debug stdout print (spec.md §9).
// The zero value is a no-op: no global logger, no package-level state.
func WithTrace(fn func(string, ...any)) Option {
	return func(c *config) { c.trace = fn }
}

// WithThresholds overrides the default numeric tolerances (spec.md §4.5,
// §6) used while verifying the generated table.
func WithThresholds(opts ...pgtypes.ThresholdOption) Option {
	return func(c *config) { c.thresholds = append(c.thresholds, opts...) }
}

func newConfig(opts []Option) *config {
	c := &config{trace: func(string, ...any) {}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
