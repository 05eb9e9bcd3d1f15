package outline

// Option configures a Foundation during creation.
//
// Example:
//
//	// Reject inconsistent dimensions instead of drawing them.
//	f := outline.New(adapter, outline.WithValidation())
type Option func(*options)

type options struct {
	validate bool
	clamp    bool
}

// WithValidation makes UpdateSVGPath check the dimensions with
// Dimensions.Validate and return the error instead of updating the adapter.
func WithValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

// WithClamping makes UpdateSVGPath pass the dimensions through
// Dimensions.Clamp before building the path. Combined with WithValidation,
// clamping happens first.
func WithClamping() Option {
	return func(o *options) {
		o.clamp = true
	}
}
