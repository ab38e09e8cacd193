package loader

import "time"

// LoaderBuilderOption is a functional option for configuring a Loader.
type LoaderBuilderOption func(*loader)

// WithCache enables or disables caching decoded images by path.
//
// Parameters:
//   - enabled: true to cache decoded images
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithCache(enabled bool) LoaderBuilderOption {
	return func(l *loader) {
		l.cacheEnabled = enabled
	}
}

// WithWorkers sets the maximum number of concurrent decoders used by LoadAll.
// Values <= 0 select one worker per CPU.
//
// Parameters:
//   - workers: maximum concurrent decodes
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithWorkers(workers int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = workers
	}
}

// WithIdleTimeout sets how long an idle decode worker waits before exiting.
//
// Parameters:
//   - d: idle timeout
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithIdleTimeout(d time.Duration) LoaderBuilderOption {
	return func(l *loader) {
		if d > 0 {
			l.idleTimeout = d
		}
	}
}
