package adf

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/go-adf/adfbdd/internal/conjunction"
)

// StrategyName selects a registered conjunction.Strategy by name, so a
// Config decoded from an external source (a file, flags, environment) can
// pick a strategy without importing internal/conjunction itself.
type StrategyName string

const (
	// StrategyNaiveGreedy is conjunction.NaiveGreedy, the reference
	// smallest-two-first reduction strategy (spec §4.3). It is the default.
	StrategyNaiveGreedy StrategyName = "naive_greedy"
)

// Config holds the knobs the solver needs beyond the ADF itself: which
// conjunction strategy to run, a cap on the expected output size, and a
// logger for progress and diagnostics. The zero Config is valid and behaves
// like DefaultConfig.
type Config struct {
	// SolverStrategy names the conjunction.Strategy to dispatch to. Empty
	// means StrategyNaiveGreedy.
	SolverStrategy StrategyName `mapstructure:"solver_strategy"`

	// MaxOutputEstimate caps the estimated output size (textadf.ExpectedSize,
	// in output tokens) above which the Boolean-network writer refuses to
	// write (spec §6's writer size-estimate refusal). Zero means
	// DefaultMaxOutputEstimate.
	MaxOutputEstimate int `mapstructure:"max_output_estimate"`

	// Logger receives progress and diagnostic messages, the same way the
	// teacher's host application wires hclog into its own library calls. A
	// nil Logger is replaced by hclog.NewNullLogger().
	Logger hclog.Logger `mapstructure:"-"`
}

// DefaultMaxOutputEstimate mirrors the refusal threshold the original
// Boolean-network writer used for its own size estimate.
const DefaultMaxOutputEstimate = 10_000_000

// DefaultConfig returns the Config used when none is supplied: NaiveGreedy,
// DefaultMaxOutputEstimate, and a null logger.
func DefaultConfig() Config {
	return Config{
		SolverStrategy:    StrategyNaiveGreedy,
		MaxOutputEstimate: DefaultMaxOutputEstimate,
		Logger:            hclog.NewNullLogger(),
	}
}

// DecodeConfig decodes a loosely-typed map (as parsed from JSON, YAML, or a
// flag set) into a Config, the way the host application decodes its own
// settings structs. Logger is never populated this way; set it directly.
func DecodeConfig(raw map[string]any) (Config, error) {
	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("adf: building config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("adf: decoding config: %w", err)
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	return cfg, nil
}

// normalize fills in zero-valued fields with their defaults and resolves
// SolverStrategy to a conjunction.Strategy.
func (c Config) normalize() (Config, conjunction.Strategy, error) {
	if c.SolverStrategy == "" {
		c.SolverStrategy = StrategyNaiveGreedy
	}
	if c.MaxOutputEstimate == 0 {
		c.MaxOutputEstimate = DefaultMaxOutputEstimate
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}

	switch c.SolverStrategy {
	case StrategyNaiveGreedy:
		return c, conjunction.NaiveGreedy{}, nil
	default:
		return c, nil, fmt.Errorf("adf: unknown solver strategy %q", c.SolverStrategy)
	}
}
