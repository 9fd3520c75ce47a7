package pqmsg

// defaultCapacity matches the initial allocation libpq uses for a fresh
// string buffer.
const defaultCapacity = 1024

// Options controls Buffer construction.
type Options struct {
	// Encoding is the client encoding applied by GetString and SendString.
	// The zero value is UTF8.
	Encoding Encoding

	// Capacity is the initial capacity reserved by New. Ignored by FromBytes.
	// Zero selects a 1 KiB default; negative values are treated as zero.
	Capacity int
}

// Option mutates Options.
type Option func(*Options)

// WithEncoding sets the client encoding. Resolve names with LookupEncoding.
func WithEncoding(enc Encoding) Option {
	return func(o *Options) { o.Encoding = enc }
}

// WithCapacity sets the initial capacity for New.
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

func buildOptions(opts []Option) Options {
	o := Options{Capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Capacity < 0 {
		o.Capacity = 0
	}
	return o
}
