package js2p8

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// DefaultCartName is used when the source carries no _cartname variable.
const DefaultCartName = "game.p8"

var (
	cartNameRe = regexp.MustCompile("var\\s+_cartname\\s*=\\s*\\[\\s*`([^`]*)`\\s*\\];")
	cartDataRe = regexp.MustCompile(`var\s+_cartdat\s*=\s*(\[[\s\S]*?\]);`)
)

// ExtractROM pulls the cartridge name and rom image out of a web-export
// source file. The rom is embedded as a JSON-compatible integer array in the
// _cartdat variable; a missing _cartname falls back to DefaultCartName.
func ExtractROM(jsSource []byte) (string, []byte, error) {
	name := DefaultCartName
	if m := cartNameRe.FindSubmatch(jsSource); m != nil {
		name = string(m[1])
	}

	m := cartDataRe.FindSubmatch(jsSource)
	if m == nil {
		return "", nil, ErrCartDataNotFound
	}

	var values []int
	if err := json.Unmarshal(m[1], &values); err != nil {
		return "", nil, fmt.Errorf("parse _cartdat array: %w", err)
	}

	rom := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return "", nil, fmt.Errorf("%w: index=%d value=%d", ErrBadByteValue, i, v)
		}

		rom[i] = byte(v)
	}

	return name, rom, nil
}

// Convert runs the whole pipeline: extract the rom from web-export source,
// parse and decompress it, and encode the cartridge as .p8 text. Options nil
// means DefaultOptions.
func Convert(jsSource []byte, opts *Options) (string, []byte, error) {
	name, rom, err := ExtractROM(jsSource)
	if err != nil {
		return "", nil, err
	}

	cart, err := ParseROM(rom)
	if err != nil {
		return "", nil, err
	}

	p8, err := cart.EncodeP8(opts)
	if err != nil {
		return "", nil, err
	}

	return name, p8, nil
}
