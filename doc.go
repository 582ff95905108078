/*
Package js2p8 recovers a PICO-8 cartridge from a JavaScript web export and
renders it as a .p8 text file.

The export embeds the flat 32K rom image as an integer array in a _cartdat
variable (cart name in _cartname). The image holds the sprite sheet, tile
map, sprite flags and sound effects at fixed offsets, and the code as a
compressed container at 0x4300: a 4-byte signature, a big-endian 16-bit
decompressed length, a big-endian 16-bit value equal to compressed length + 8,
then the payload.

Code compression is an LZ77 scheme addressed at the bit level, read
least-significant-bit-first within each byte. Each token starts with one
header bit. Header 1 is a literal through a 256-entry move-to-front table:
a unary prefix of u 1-bits selects a rank bucket based at ((1<<u)-1)<<4, then
4+u bits give the rank within the bucket; the decoded byte moves to rank 0.
Header 0 is a back-reference: up to two selector bits pick a 5, 10 or 15-bit
offset (stored minus one), and the length starts at 3 and accumulates 3-bit
groups where a group of 7 continues. Copies read already-produced output,
cycling modulo the offset when the length exceeds it. A 10-bit offset of 1 is
an escape into a raw byte run terminated by a NUL; a run can therefore never
carry a 0x00 byte (a constraint of the format, not of this decoder). There is
no end marker: decoding stops exactly at the expected output length, even
mid-token.

Use Decompress(src, outLen) to decode a raw payload with a known output size.
Use ParseROM(rom) to slice a rom image into sections and decode the code.
Use ExtractROM(jsSource) to pull the cart name and rom image out of a web
export, and Convert(jsSource, opts) for the whole pipeline in one call.
Use PlainOptions() to keep code bytes as \xNN escapes instead of decoding the
button glyphs.

# Examples

Decode a compressed code payload with a known decompressed length:

	code, err := js2p8.Decompress(payload, decompressedLen)
	if err != nil {
		return err
	}

Recover a cartridge from a web export and write it out:

	name, p8, err := js2p8.Convert(jsSource, nil)
	if err != nil {
		return err
	}
	err = os.WriteFile(name, p8, 0o644)

Slice a rom image yourself and render byte-faithful code:

	cart, err := js2p8.ParseROM(rom)
	if err != nil {
		return err
	}
	p8, err := cart.EncodeP8(js2p8.PlainOptions())
*/
package js2p8
