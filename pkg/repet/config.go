package repet

// Config holds the tuning constants for the REPET family. The zero
// value is never used directly; DefaultConfig (applied automatically
// by every pipeline) fills in the defaults from the design, and
// Option values layer overrides on top. Callers are never required to
// supply a Config.
type Config struct {
	// CutoffFrequency is the high-pass override boundary in Hz.
	// Default: 100.
	CutoffFrequency float64

	// PeriodRangeSeconds is [min, max] admissible repeating-period
	// length, used by Original, Extended and Adaptive.
	// Default: [1, 10].
	PeriodRangeSeconds [2]float64

	// SegmentLengthSeconds is the sliding-window length used by
	// Extended and Adaptive. Default: 10.
	SegmentLengthSeconds float64

	// SegmentStepSeconds is the sliding-window hop used by Extended
	// and Adaptive. Default: 5.
	SegmentStepSeconds float64

	// FilterOrder is the number of repetitions whose median is taken
	// per frame by Adaptive's time-varying mask. Default: 5.
	FilterOrder int

	// SimilarityThreshold is the minimum cosine similarity accepted as
	// a repetition by Sim and SimOnline. Default: 0.
	SimilarityThreshold float64

	// SimilarityDistanceSeconds is the minimum separation between two
	// accepted similar frames. Default: 1.
	SimilarityDistanceSeconds float64

	// SimilarityNumber caps how many similar frames are kept per
	// frame. Default: 100.
	SimilarityNumber int

	// BufferLengthSeconds is the causal ring-buffer length used by
	// SimOnline. Default: 10.
	BufferLengthSeconds float64

	// Logger receives progress and warning messages. If nil, a no-op
	// logger is used.
	Logger Logger

	// Metrics records invocation counts and durations. If nil,
	// metrics collection is skipped.
	Metrics MetricsRecorder
}

// Option configures a Config in place.
type Option func(*Config)

// WithCutoffFrequency overrides the high-pass override boundary.
func WithCutoffFrequency(hz float64) Option {
	return func(c *Config) { c.CutoffFrequency = hz }
}

// WithPeriodRange overrides the admissible period range, in seconds.
func WithPeriodRange(minSeconds, maxSeconds float64) Option {
	return func(c *Config) { c.PeriodRangeSeconds = [2]float64{minSeconds, maxSeconds} }
}

// WithSegment overrides the sliding-window length and hop, in seconds.
func WithSegment(lengthSeconds, stepSeconds float64) Option {
	return func(c *Config) {
		c.SegmentLengthSeconds = lengthSeconds
		c.SegmentStepSeconds = stepSeconds
	}
}

// WithFilterOrder overrides Adaptive's filter order.
func WithFilterOrder(order int) Option {
	return func(c *Config) { c.FilterOrder = order }
}

// WithSimilarity overrides the similarity search parameters used by
// Sim and SimOnline.
func WithSimilarity(threshold, distanceSeconds float64, number int) Option {
	return func(c *Config) {
		c.SimilarityThreshold = threshold
		c.SimilarityDistanceSeconds = distanceSeconds
		c.SimilarityNumber = number
	}
}

// WithBufferLength overrides SimOnline's ring-buffer length, in
// seconds.
func WithBufferLength(seconds float64) Option {
	return func(c *Config) { c.BufferLengthSeconds = seconds }
}

// WithLogger sets the logger used for progress and warning messages.
func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMetrics sets the metrics recorder used to instrument pipeline
// calls.
func WithMetrics(m MetricsRecorder) Option {
	return func(c *Config) { c.Metrics = m }
}

// DefaultConfig returns a Config with the design's default tuning
// constants.
func DefaultConfig() Config {
	return Config{
		CutoffFrequency:           100,
		PeriodRangeSeconds:        [2]float64{1, 10},
		SegmentLengthSeconds:      10,
		SegmentStepSeconds:        5,
		FilterOrder:               5,
		SimilarityThreshold:       0,
		SimilarityDistanceSeconds: 1,
		SimilarityNumber:          100,
		BufferLengthSeconds:       10,
		Logger:                    nopLogger{},
		Metrics:                   nopMetrics{},
	}
}

func resolveConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	return cfg
}
