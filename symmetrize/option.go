package symmetrize

// config collects the options Molecule and Wavefunctions accept.
type config struct {
	trace func(string, ...any)
}

// Option configures a Molecule or Wavefunctions call.
type Option func(*config)

// WithTrace installs a hook invoked with one human-readable line per
// equivalence-set error contribution or partner-assignment decision,
// replacing the C source's debug stdout prints (spec.md §9). The zero value
// is a no-op.
func WithTrace(fn func(string, ...any)) Option {
	return func(c *config) { c.trace = fn }
}

func newConfig(opts []Option) *config {
	c := &config{trace: func(string, ...any) {}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
