package deque

import (
	"log/slog"

	"github.com/lucasgdosr/centerdeque/internal/errorutil"
	"github.com/lucasgdosr/centerdeque/internal/log"
)

// Option configures a Deque built by NewWithOptions or FromSlice.
type Option interface {
	// applyOptions leaves opts untouched when it fails.
	applyOptions(opts *options) error
}

type options struct {
	capacity int
	logger   *slog.Logger
	observer GrowthObserver
}

func defaultOptions() options {
	return options{capacity: DefaultCapacity, logger: log.Noop}
}

type withInitialCapacity struct {
	capacity int
}

func (o withInitialCapacity) applyOptions(opts *options) error {
	if o.capacity < 0 {
		return errorutil.NewInvalidArgumentError("negative capacity %d", o.capacity)
	}
	opts.capacity = o.capacity
	return nil
}

// WithInitialCapacity overrides DefaultCapacity. Zero is allowed: the first
// push grows the buffer. Negative values make NewWithOptions fail with
// ErrInvalidArgument.
func WithInitialCapacity(capacity int) Option {
	return withInitialCapacity{capacity}
}

type withLogger struct {
	logger *slog.Logger
}

func (o withLogger) applyOptions(opts *options) error {
	opts.logger = o.logger
	return nil
}

// WithLogger sets the logger that receives growth events at debug level.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return withLogger{logger}
}

type withGrowthObserver struct {
	observer GrowthObserver
}

func (o withGrowthObserver) applyOptions(opts *options) error {
	opts.observer = o.observer
	return nil
}

// WithGrowthObserver registers an observer notified after every growth.
func WithGrowthObserver(observer GrowthObserver) Option {
	return withGrowthObserver{observer}
}
