package js2p8

// Cartridge rom layout. Offsets into the flat 32K image recovered from the
// _cartdat array of a web export.
const (
	GfxStart = 0x0000 // Sprite sheet: 128x128 4-bit pixels, two per byte.
	GfxEnd   = 0x2000

	MapSharedStart = 0x1000 // Lower 32 map rows, shared with the sprite sheet.
	MapSharedEnd   = 0x2000
	MapStart       = 0x2000 // Upper 32 map rows.
	MapEnd         = 0x3000

	GffStart = 0x3000 // Sprite flags, one byte per sprite.
	GffEnd   = 0x3100

	SfxStart = 0x3200 // 64 sound effects, 68 bytes each.
	SfxEnd   = 0x4300

	CodeStart = 0x4300 // Compressed code container (header + payload).
)

// Code container header at CodeStart: 4-byte signature, big-endian uint16
// decompressed length, big-endian uint16 equal to compressed length + 8.
const (
	CodeHeaderSize = 8
	sigSize        = 4
)

// Sound effect entry layout inside the sfx region.
const (
	sfxCount     = 64 // Entries in the sfx region.
	sfxEntrySize = 68 // 64 note bytes + 4 trailing header bytes.
	sfxNoteCount = 32 // Notes per entry, two bytes each.
)
