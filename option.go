package bptree

const (
	// MinOrder is the smallest order a Tree is built with. Smaller orders
	// are clamped up to it.
	MinOrder = 4

	// DefaultOrder is the order used by the command driver until an order
	// line is read.
	DefaultOrder = MinOrder
)

// options configures tree behavior.
type options struct {
	logger Logger
}

func defaultOptions() options {
	return options{
		logger: DiscardLogger{},
	}
}

// Option configures a Tree using the functional options pattern.
type Option func(*options)

// WithLogger sets the logger used to report structural changes such as a
// root split. A nil logger restores the discard logger.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger(logger Logger) Option {
	return func(opts *options) {
		if logger == nil {
			logger = DiscardLogger{}
		}
		opts.logger = logger
	}
}

// NormalizeOrder clamps order to MinOrder and rounds odd orders up to the
// next even value, so a split always divides a full node evenly.
func NormalizeOrder(order int) int {
	if order < MinOrder {
		return MinOrder
	}
	if order%2 != 0 {
		order++
	}
	return order
}
