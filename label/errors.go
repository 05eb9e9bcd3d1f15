package label

import "errors"

// ErrEmptyFontData is returned when WithFontData is given no bytes.
var ErrEmptyFontData = errors.New("label: empty font data")
