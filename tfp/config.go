package tfp

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/oocgraph/extsort"
)

// Config carries Engine.Run's tuning knobs (spec.md §6: "no CLI, env vars,
// or persisted configuration are part of the core").
type Config struct {
	// SubBatchSize caps how many swap requests are decided before the
	// engine folds its output back into the input edge list for the next
	// round (spec.md §4.8). Zero means "the whole batch in one round".
	SubBatchSize int
	// MemoryBudget bounds every sorter the engine opens. Defaults to
	// extsort.DefaultMemoryBudget. The engine's priority queues are not
	// sized from it; each holds up to extpq.DefaultBlockCapacity elements.
	MemoryBudget int
	// Logger receives debug tracing; defaults to a no-op logger.
	Logger *zap.Logger
}

// Option configures a Config field; functional options mirror the style
// used throughout extsort, extpq, and cm.
type Option func(*Config)

// WithSubBatchSize overrides the sub-batch size. Panics if n <= 0.
func WithSubBatchSize(n int) Option {
	if n <= 0 {
		panic("tfp: WithSubBatchSize requires n > 0")
	}
	return func(c *Config) { c.SubBatchSize = n }
}

// WithMemoryBudget overrides the byte budget given to every sorter the
// engine opens. Panics if budget <= 0.
func WithMemoryBudget(budget int) Option {
	if budget <= 0 {
		panic("tfp: WithMemoryBudget requires budget > 0")
	}
	return func(c *Config) { c.MemoryBudget = budget }
}

// WithLogger attaches a debug logger. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("tfp: WithLogger(nil)")
	}
	return func(c *Config) { c.Logger = l }
}

func defaultConfig() Config {
	return Config{MemoryBudget: extsort.DefaultMemoryBudget, Logger: zap.NewNop()}
}

// Stats reports lightweight instrumentation about a Run, a supplemented
// feature grounded in the original's compute_stats-gated counters: how
// many dependency deliveries were forwarded and how many edge accesses
// the batch resolved.
type Stats struct {
	// EdgesTouched counts edge accesses resolved across the whole run
	// (two per swap, summed across every sub-batch).
	EdgesTouched int
	// MessagesForwarded counts dependency-chain deliveries consumed from
	// the merged seed/forward stream.
	MessagesForwarded int
	// SubBatches is how many rounds the iteration loop ran.
	SubBatches int
}
