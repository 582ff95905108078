package js2p8

// Options configures the .p8 text writer.
type Options struct {
	// DecodeGlyphs: if true, the six button glyph bytes in code are written
	// as their unicode forms (arrows, O, X). If false, every byte outside
	// 7-bit ASCII is written as a literal \xNN escape.
	DecodeGlyphs bool
}

// DefaultOptions returns options for default behavior: button glyphs decoded.
func DefaultOptions() *Options {
	return &Options{
		DecodeGlyphs: true,
	}
}

// PlainOptions returns options for byte-faithful output: no glyph decoding,
// all high bytes as \xNN escapes.
func PlainOptions() *Options {
	return &Options{
		DecodeGlyphs: false,
	}
}
