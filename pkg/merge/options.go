package merge

// Options controls how the engine applies records.
type Options struct {
	Erase             bool         // Remove every existing entry before the first record
	Strict            bool         // Abort on the first malformed record instead of skipping it
	SignedHemispheres bool         // Negate south latitudes and west longitudes
	Notify            func(Notice) // Receives one notice per mutation or anomaly
}

// Defaults returns the default merge options.
func Defaults() *Options {
	return &Options{
		Erase:             false,
		Strict:            false,
		SignedHemispheres: false,
		Notify:            nil,
	}
}

// Apply applies the given options to the merge options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option is a function that configures merge Options.
type Option func(*Options)

// WithErase empties every container before merging.
func WithErase(erase bool) Option {
	return func(o *Options) {
		o.Erase = erase
	}
}

// WithStrict makes format errors fatal.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// WithSignedHemispheres applies the hemisphere letter of DMS coordinates.
func WithSignedHemispheres(signed bool) Option {
	return func(o *Options) {
		o.SignedHemispheres = signed
	}
}

// WithNotifier sets the notice callback.
func WithNotifier(fn func(Notice)) Option {
	return func(o *Options) {
		o.Notify = fn
	}
}
