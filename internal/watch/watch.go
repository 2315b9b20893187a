// Package watch calls back when watched files change.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last change before a callback runs.
const DefaultDebounce = 300 * time.Millisecond

// DefaultPollInterval is how often the polling backend checks files.
const DefaultPollInterval = 250 * time.Millisecond

// Option tunes a Watcher.
type Option func(*options)

type options struct {
	debounce time.Duration
	interval time.Duration
	polling  bool
	logger   *zap.Logger
}

// WithDebounce sets the quiet period collapsing bursts of changes into one callback.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithPolling forces the polling backend with the given interval.
func WithPolling(interval time.Duration) Option {
	return func(o *options) {
		o.polling = true
		if interval > 0 {
			o.interval = interval
		}
	}
}

// WithLogger sets a logger for backend failures that do not stop watching.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// backend delivers raw change notifications for absolute paths.
type backend interface {
	add(path string) error
	run(ctx context.Context, notify func(path string)) error
	close() error
}

// Watcher calls onChange with the path of a changed file once changes of
// that file calm down.
type Watcher struct {
	be       backend
	logger   *zap.Logger
	onChange func(string)
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a watcher using inotify on linux and polling elsewhere.
func New(onChange func(path string), opts ...Option) (*Watcher, error) {
	o := options{
		debounce: DefaultDebounce,
		interval: DefaultPollInterval,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var be backend
	if o.polling {
		be = newPoller(o.interval)
	} else {
		var err error
		be, err = newNative(o)
		if err != nil {
			return nil, errors.Wrap(err, "init file watcher")
		}
	}

	return &Watcher{
		be:       be,
		logger:   o.logger,
		onChange: onChange,
		debounce: o.debounce,
		timers:   map[string]*time.Timer{},
	}, nil
}

// Add starts watching a file.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "resolve path")
	}

	if err := w.be.add(abs); err != nil {
		return errors.Wrapf(err, "watch %s", abs)
	}
	return nil
}

// Run delivers callbacks until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimers()

	err := w.be.run(ctx, w.changed)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, "watch files")
	}
	return nil
}

// Close releases backend resources.
func (w *Watcher) Close() error {
	w.stopTimers()
	return w.be.close()
}

func (w *Watcher) changed(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}

	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		w.logger.Debug("file changed", zap.String("path", path))
		w.onChange(path)
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
}
