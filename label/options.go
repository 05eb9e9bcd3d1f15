package label

import "golang.org/x/image/font/gofont/goregular"

// Option configures a Measurer.
type Option func(*config)

type config struct {
	fontData []byte
	language string
}

func defaultConfig() config {
	return config{
		fontData: goregular.TTF,
		language: "en",
	}
}

// WithFontData measures with the given TrueType or OpenType font instead
// of Go Regular.
func WithFontData(data []byte) Option {
	return func(c *config) {
		c.fontData = data
	}
}

// WithLanguage sets the BCP 47 language tag passed to the shaper, which
// selects language-specific glyph substitutions. The default is "en".
func WithLanguage(tag string) Option {
	return func(c *config) {
		c.language = tag
	}
}
