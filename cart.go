package js2p8

import (
	"encoding/binary"
	"fmt"
)

// Cart holds the sections of a recovered cartridge. Gfx, Map, Gff and Sfx are
// raw region bytes from the rom image; Code is the decompressed source text.
type Cart struct {
	Signature [4]byte // Container signature, exposed but never verified.
	Gfx       []byte  // 8192 bytes, two 4-bit pixels per byte.
	Map       []byte  // 8192 bytes: upper half first, then the gfx-shared half.
	Gff       []byte  // 256 sprite flag bytes.
	Sfx       []byte  // 64 entries of 68 bytes.
	Code      []byte  // Decompressed code bytes.
}

// ParseROM slices a flat rom image into cartridge sections and decompresses
// the code container. The image must reach at least CodeStart+CodeHeaderSize;
// only length consistency of the container header is checked.
func ParseROM(rom []byte) (*Cart, error) {
	if len(rom) < CodeStart+CodeHeaderSize {
		return nil, fmt.Errorf("%w: have=%d need=%d", ErrShortImage, len(rom), CodeStart+CodeHeaderSize)
	}

	decompressedLen := int(binary.BigEndian.Uint16(rom[CodeStart+sigSize:]))
	storedLen := int(binary.BigEndian.Uint16(rom[CodeStart+sigSize+2:]))

	// The stored field counts the payload plus the 8 header bytes.
	if storedLen < CodeHeaderSize {
		return nil, fmt.Errorf("%w: stored=%d", ErrBadLengthField, storedLen)
	}

	payloadStart := CodeStart + CodeHeaderSize
	payloadEnd := payloadStart + storedLen - CodeHeaderSize
	if payloadEnd > len(rom) {
		return nil, fmt.Errorf("%w: need=%d have=%d", ErrTruncatedPayload, payloadEnd, len(rom))
	}

	code, err := Decompress(rom[payloadStart:payloadEnd], decompressedLen)
	if err != nil {
		return nil, fmt.Errorf("decompress code: %w", err)
	}

	// The lower 32 map rows live in the bottom half of the sprite sheet.
	mapData := make([]byte, 0, (MapEnd-MapStart)+(MapSharedEnd-MapSharedStart))
	mapData = append(mapData, rom[MapStart:MapEnd]...)
	mapData = append(mapData, rom[MapSharedStart:MapSharedEnd]...)

	cart := &Cart{
		Gfx:  rom[GfxStart:GfxEnd],
		Map:  mapData,
		Gff:  rom[GffStart:GffEnd],
		Sfx:  rom[SfxStart:SfxEnd],
		Code: code,
	}
	copy(cart.Signature[:], rom[CodeStart:CodeStart+sigSize])

	return cart, nil
}
