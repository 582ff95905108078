package js2p8

import "fmt"

// bitReader is a sequential cursor over a byte slice, read one bit at a time.
// Bits come least-significant-first within each byte, then the cursor rolls
// over to the next byte. There is no rewind; reading past the end is an error.
type bitReader struct {
	data    []byte // The compressed bytes to read from.
	byteIdx int    // The current byte position.
	bitIdx  uint   // The current bit within the byte: 0 = LSB, 7 = MSB.
}

// readBit returns the next bit and advances the cursor.
func (r *bitReader) readBit() (byte, error) {
	if r.byteIdx >= len(r.data) {
		return 0, fmt.Errorf("%w: byte=%d bit=%d", ErrExhaustedInput, r.byteIdx, r.bitIdx)
	}

	bit := (r.data[r.byteIdx] >> r.bitIdx) & 1
	r.bitIdx++

	if r.bitIdx == 8 {
		r.bitIdx = 0
		r.byteIdx++
	}

	return bit, nil
}

// readBits reads n bits and assembles them least-significant-first: bit 0 of
// the result is the first bit read. n == 0 returns 0.
func (r *bitReader) readBits(n int) (int, error) {
	value := 0
	for i := 0; i < n; i++ {
		bit, err := r.readBit()
		if err != nil {
			return 0, err
		}

		value |= int(bit) << i
	}

	return value, nil
}
