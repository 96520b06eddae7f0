package extsort

import (
	"io"

	"go.uber.org/zap"
)

// Comparator imposes the strict-weak-order the sorter sorts by. It must be
// transitive and consistent; Less(a,b) == true means a sorts before b.
type Comparator[T any] interface {
	Less(a, b T) bool
}

// ComparatorFunc adapts a plain function to a Comparator.
type ComparatorFunc[T any] func(a, b T) bool

// Less implements Comparator.
func (f ComparatorFunc[T]) Less(a, b T) bool { return f(a, b) }

// Codec (de)serializes T to the byte stream used for spilled runs. Each
// value type the sorter is instantiated over (gmodel.Edge, cm's half-edge
// word, tfp's message structs) supplies its own fixed-width codec.
type Codec[T any] interface {
	Encode(w io.Writer, v T) error
	Decode(r io.Reader) (T, error)
}

const (
	// DefaultMemoryBudget bounds the RAM a Sorter buffers before spilling
	// a run to disk, absent an explicit WithMemoryBudget.
	DefaultMemoryBudget = 64 << 20 // 64 MiB
)

type config struct {
	memoryBudget int
	elementSize  int
	tempDir      string
	compress     bool
	logger       *zap.Logger
}

func defaultConfig() config {
	return config{
		memoryBudget: DefaultMemoryBudget,
		elementSize:  32,
		compress:     true,
		logger:       zap.NewNop(),
	}
}

// Option configures a Sorter. Option constructors validate and panic on
// meaningless input, following the teacher's functional-options contract
// (lvlath/builder): algorithms themselves must never panic, but resolving
// a nonsensical option is a programmer error caught at construction time.
type Option func(*config)

// WithMemoryBudget sets the byte budget for buffered (unspilled) elements.
// Panics if budget <= 0.
func WithMemoryBudget(budget int) Option {
	if budget <= 0 {
		panic("extsort: WithMemoryBudget requires budget > 0")
	}
	return func(c *config) { c.memoryBudget = budget }
}

// WithElementSizeHint tells the sorter how many bytes to assume per
// buffered element when deciding when to spill, since T's in-memory size
// is not generally knowable for types holding slices or pointers. Panics
// if hint <= 0.
func WithElementSizeHint(hint int) Option {
	if hint <= 0 {
		panic("extsort: WithElementSizeHint requires hint > 0")
	}
	return func(c *config) { c.elementSize = hint }
}

// WithTempDir overrides the directory spilled runs are written under.
// Empty string (the default) uses os.TempDir().
func WithTempDir(dir string) Option {
	return func(c *config) { c.tempDir = dir }
}

// WithCompression toggles s2 compression of spilled runs. Enabled by
// default; disable for small, already-compressed, or latency-sensitive
// payloads.
func WithCompression(enabled bool) Option {
	return func(c *config) { c.compress = enabled }
}

// WithLogger attaches a debug logger. Defaults to a no-op logger, mirroring
// the original implementation's compile-time compute_stats/DEBUG_MSG flag
// as a runtime no-op rather than a build-time toggle.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("extsort: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
