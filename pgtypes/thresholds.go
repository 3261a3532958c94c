package pgtypes

// defaultOrthogonality is the fixed tolerance spec.md §4.5 requires for
// character-table row-orthogonality verification.
const defaultOrthogonality = 1e-10

// Thresholds collects the numeric tolerances consumed by this module. The
// zero value is not valid; build one with NewThresholds.
type Thresholds struct {
	// Zero is the squared-length threshold below which a single-atom
	// equivalence set at the origin is excluded from the geometry
	// symmetrizer's error accumulation (spec.md §4.7).
	Zero float64
	// Orthogonality is the tolerance used when verifying character-table row
	// orthogonality (spec.md §4.5). Defaults to 1e-10.
	Orthogonality float64
}

// ThresholdOption configures a Thresholds value built by NewThresholds.
type ThresholdOption func(*Thresholds)

// WithZeroThreshold sets the squared-length threshold used to ignore
// near-origin single-atom equivalence sets. It panics if zero is negative.
func WithZeroThreshold(zero float64) ThresholdOption {
	if zero < 0 {
		panic("pgtypes: negative zero threshold")
	}
	return func(t *Thresholds) { t.Zero = zero }
}

// WithOrthogonalityTolerance overrides the default row-orthogonality
// tolerance. It panics if tol is negative.
func WithOrthogonalityTolerance(tol float64) ThresholdOption {
	if tol < 0 {
		panic("pgtypes: negative orthogonality tolerance")
	}
	return func(t *Thresholds) { t.Orthogonality = tol }
}

// NewThresholds builds a Thresholds value with documented defaults
// (Zero: 0, Orthogonality: 1e-10), applying any options in order.
func NewThresholds(opts ...ThresholdOption) Thresholds {
	t := Thresholds{Zero: 0, Orthogonality: defaultOrthogonality}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
