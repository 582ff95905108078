package js2p8

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// P8Header opens every written cartridge.
const P8Header = "pico-8 cartridge // http://www.pico-8.com\nversion 0\n__lua__\n"

// Button glyph bytes in code and their unicode forms.
var codeGlyphs = map[byte]string{
	0x94: "\u2b06\ufe0f",     // up arrow
	0x83: "\u2b07\ufe0f",     // down arrow
	0x8b: "\u2b05\ufe0f",     // left arrow
	0x91: "\u27a1\ufe0f",     // right arrow
	0x8e: "\U0001f17e\ufe0f", // O button
	0x97: "\u274e",           // X button
}

const hexDigits = "0123456789abcdef"

// EncodeP8 renders the cartridge as .p8 text: the code under __lua__, then
// the __gfx__, __map__, __gff__ and __sfx__ sections. Options nil means
// DefaultOptions.
func (c *Cart) EncodeP8(opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if len(c.Gfx) != GfxEnd-GfxStart {
		return nil, fmt.Errorf("%w: gfx=%d", ErrBadRegionSize, len(c.Gfx))
	}
	if len(c.Map) != (MapEnd-MapStart)+(MapSharedEnd-MapSharedStart) {
		return nil, fmt.Errorf("%w: map=%d", ErrBadRegionSize, len(c.Map))
	}
	if len(c.Gff) != GffEnd-GffStart {
		return nil, fmt.Errorf("%w: gff=%d", ErrBadRegionSize, len(c.Gff))
	}
	if len(c.Sfx) != SfxEnd-SfxStart {
		return nil, fmt.Errorf("%w: sfx=%d", ErrBadRegionSize, len(c.Sfx))
	}

	var b strings.Builder
	b.WriteString(P8Header)
	writeCode(&b, c.Code, opts.DecodeGlyphs)

	b.WriteString("\n__gfx__\n")
	writeGfx(&b, c.Gfx)

	b.WriteString("\n__map__\n")
	writeHexRows(&b, c.Map)

	b.WriteString("\n__gff__\n")
	writeHexRows(&b, c.Gff)

	b.WriteString("\n__sfx__\n")
	writeSfx(&b, c.Sfx)

	return []byte(b.String()), nil
}

// writeCode writes code bytes as text. 7-bit ASCII passes through; known
// button glyphs become their unicode forms when decodeGlyphs is set; any
// other high byte is written as a literal \xNN escape.
func writeCode(b *strings.Builder, code []byte, decodeGlyphs bool) {
	for _, v := range code {
		if v < 0x80 {
			b.WriteByte(v)
			continue
		}

		if decodeGlyphs {
			if glyph, ok := codeGlyphs[v]; ok {
				b.WriteString(glyph)
				continue
			}
		}

		fmt.Fprintf(b, `\x%02x`, v)
	}
}

// writeGfx writes 128 rows of 128 pixels, one hex digit per pixel. Each byte
// holds two pixels, low nibble first.
func writeGfx(b *strings.Builder, gfx []byte) {
	for y := 0; y < 128; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}

		row := gfx[y*64 : y*64+64]
		for _, v := range row {
			b.WriteByte(hexDigits[v&0x0F])
			b.WriteByte(hexDigits[v>>4])
		}
	}
}

// writeHexRows writes a region as hex lines of 128 bytes (map and gff).
func writeHexRows(b *strings.Builder, data []byte) {
	for i := 0; i < len(data); i += 128 {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(hex.EncodeToString(data[i : i+128]))
	}
}

// writeSfx writes one line per sound effect: the four trailing header bytes
// (editor mode, note duration, loop start, loop end), then 32 notes of five
// hex digits each unpacked from the 64 note bytes.
func writeSfx(b *strings.Builder, sfx []byte) {
	for i := 0; i < sfxCount; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}

		entry := sfx[i*sfxEntrySize : (i+1)*sfxEntrySize]
		notes := entry[:sfxNoteCount*2]
		fmt.Fprintf(b, "%02x%02x%02x%02x", entry[64], entry[65], entry[66], entry[67])

		for j := 0; j < len(notes); j += 2 {
			lsb := notes[j]
			msb := notes[j+1]

			pitch := lsb & 0x3F
			waveform := ((msb & 0x80) >> 4) | ((msb & 0x01) << 2) | ((lsb & 0xC0) >> 6)
			volume := (msb >> 1) & 0x07
			effect := (msb >> 4) & 0x07

			fmt.Fprintf(b, "%02x%x%x%x", pitch, waveform, volume, effect)
		}
	}
}
