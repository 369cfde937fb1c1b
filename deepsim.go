package deepsim

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is returned when a document contains a value outside of
// the decoded-document universe: objects, arrays, strings, numbers, bools &
// null
var ErrUnsupportedType = errors.New("unsupported document value")

// Config are any possible configuration parameters for comparing documents
type Config struct {
	// FuzzyThreshold enables approximate string matching when greater than
	// zero. Two strings with a similarity ratio (0-100) at or above the
	// threshold count as a match. Only string pairs are affected
	FuzzyThreshold int
	// If true, fuzzy string comparisons ignore case. Has no effect when
	// FuzzyThreshold is zero
	CaseInsensitive bool
}

// Option is a function that adjust a config, zero or more Options can be
// passed to New or Compare
type Option func(cfg *Config)

// OptionFuzzyThreshold sets the fuzzy string matching threshold, 0 disables
// fuzzy matching. New clamps the threshold to the range 0-100
func OptionFuzzyThreshold(threshold int) Option {
	return func(cfg *Config) {
		cfg.FuzzyThreshold = threshold
	}
}

// OptionCaseInsensitive toggles case folding for fuzzy string comparisons
func OptionCaseInsensitive(fold bool) Option {
	return func(cfg *Config) {
		cfg.CaseInsensitive = fold
	}
}

// DeepSim is a configured document comparator. A DeepSim holds no state
// between comparisons & is safe for concurrent use
type DeepSim struct {
	cfg Config
}

// New creates a DeepSim. By default scalars must be exactly equal to match
func New(opts ...Option) *DeepSim {
	cfg := Config{CaseInsensitive: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.FuzzyThreshold < 0 {
		cfg.FuzzyThreshold = 0
	} else if cfg.FuzzyThreshold > 100 {
		cfg.FuzzyThreshold = 100
	}
	return &DeepSim{cfg: cfg}
}

// Compare is a convenience wrapper that creates a DeepSim from opts and
// compares left with right
func Compare(left, right interface{}, opts ...Option) (*Result, error) {
	return New(opts...).Compare(left, right)
}

// Compare walks left & right in lock-step and scores how closely they agree.
// Documents are the go types created by unmarshaling JSON or YAML into an
// interface{}, and are never modified. The only error Compare returns wraps
// ErrUnsupportedType
func (ds *DeepSim) Compare(left, right interface{}) (*Result, error) {
	var leaves []leaf
	w := &walker{
		cfg:  ds.cfg,
		emit: func(l leaf) { leaves = append(leaves, l) },
	}
	if err := w.walk(left, right, nil); err != nil {
		return nil, err
	}
	return summarize(leaves), nil
}

// Result is the outcome of a comparison
type Result struct {
	// Similarity is the percentage (0.0-100.0) of leaves that matched
	Similarity float64 `json:"similarity"`
	// Differences lists every non-matching leaf in traversal order
	Differences []*Difference `json:"differences"`
	// Stats holds the counts Similarity was computed from
	Stats Stats `json:"stats"`
}

// Passes reports whether the result is at least minimum percent similar
func (r *Result) Passes(minimum float64) bool {
	return r.Similarity >= minimum
}

// String gives a one-line summary of the result
func (r *Result) String() string {
	return fmt.Sprintf("%.2f%% similar", r.Similarity)
}

// summarize folds a leaf stream into a single flat score & difference list
func summarize(leaves []leaf) *Result {
	res := &Result{Differences: []*Difference{}}
	for _, l := range leaves {
		res.Stats.add(l.kind)
		if l.kind == kindMatch {
			continue
		}
		res.Differences = append(res.Differences, &Difference{
			Kind:  l.kind,
			Path:  l.path,
			Left:  l.left,
			Right: l.right,
		})
	}
	res.Similarity = res.Stats.Similarity()
	return res
}
