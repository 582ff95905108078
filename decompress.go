package js2p8

import "fmt"

// maxUnary is the largest useful unary prefix in a literal token: the bucket
// base for u is ((1<<u)-1)<<4, which already exceeds rank 255 once u > 4.
const maxUnary = 4

// mtfTable is a move-to-front list of all 256 byte values. It starts as the
// identity permutation and stays a permutation of 0..255 throughout a decode.
type mtfTable [256]byte

func newMTFTable() *mtfTable {
	var t mtfTable
	for i := range t {
		t[i] = byte(i)
	}

	return &t
}

// decode returns the byte at the given rank and promotes it to rank 0.
func (t *mtfTable) decode(rank int) byte {
	b := t[rank]
	copy(t[1:rank+1], t[:rank])
	t[0] = b

	return b
}

// Decompress decodes src into a new buffer of exactly outLen bytes.
// The stream has no end marker: decoding stops the instant outLen bytes have
// been produced, even mid-token, so outLen must come from the container
// header. Each call owns fresh state; concurrent calls on independent inputs
// are safe.
func Decompress(src []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	r := &bitReader{data: src}
	mtf := newMTFTable()
	out := make([]byte, 0, outLen)

	for len(out) < outLen {
		headerBit, err := r.readBit()
		if err != nil {
			return nil, err
		}

		if headerBit == 1 {
			b, err := readLiteral(r, mtf)
			if err != nil {
				return nil, err
			}

			out = append(out, b)
			continue
		}

		offsetWidth, err := readOffsetWidth(r)
		if err != nil {
			return nil, err
		}

		rawOffset, err := r.readBits(offsetWidth)
		if err != nil {
			return nil, err
		}
		offset := rawOffset + 1

		// A 10-bit offset of 1 is not a back-reference but an escape into a
		// raw byte run, terminated by a NUL (which is never emitted).
		if offsetWidth == 10 && offset == 1 {
			out, err = copyRawRun(r, out, outLen)
			if err != nil {
				return nil, err
			}

			continue
		}

		length, err := readMatchLength(r)
		if err != nil {
			return nil, err
		}

		start := len(out) - offset
		if start < 0 {
			return nil, fmt.Errorf("%w: offset=%d produced=%d", ErrCorruptReference, offset, len(out))
		}

		// Copy from already-produced output, cycling modulo offset so a match
		// longer than its offset repeats the short pattern.
		for i := 0; i < length && len(out) < outLen; i++ {
			out = append(out, out[start+i%offset])
		}
	}

	return out, nil
}

// readLiteral decodes one move-to-front literal. The rank is unary-bucketed:
// u leading 1-bits select a bucket of 16<<u ranks based at ((1<<u)-1)<<4,
// then 4+u bits give the position within the bucket. Recently used bytes sit
// at low ranks and get the short codes.
func readLiteral(r *bitReader, mtf *mtfTable) (byte, error) {
	unary := 0
	for {
		bit, err := r.readBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}

		unary++
		if unary > maxUnary {
			return 0, fmt.Errorf("%w: unary=%d rank>=%d", ErrInvalidRank, unary, ((1<<unary)-1)<<4)
		}
	}

	extra, err := r.readBits(4 + unary)
	if err != nil {
		return 0, err
	}

	rank := extra + (((1 << unary) - 1) << 4)
	if rank > 255 {
		return 0, fmt.Errorf("%w: rank=%d", ErrInvalidRank, rank)
	}

	return mtf.decode(rank), nil
}

// readOffsetWidth reads up to two selector bits: 1,1 -> 5 bits; 1,0 -> 10
// bits; 0 -> 15 bits.
func readOffsetWidth(r *bitReader) (int, error) {
	bit, err := r.readBit()
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		return 15, nil
	}

	bit, err = r.readBit()
	if err != nil {
		return 0, err
	}
	if bit == 1 {
		return 5, nil
	}

	return 10, nil
}

// readMatchLength decodes a continuation-coded length: start at 3 and add
// 3-bit groups, where a group of 7 means another group follows.
func readMatchLength(r *bitReader) (int, error) {
	length := 3
	for {
		part, err := r.readBits(3)
		if err != nil {
			return 0, err
		}

		length += part
		if part != 7 {
			return length, nil
		}
	}
}

// copyRawRun appends literal bytes until a NUL terminator or until the output
// reaches outLen. If outLen cuts the run short the terminator stays unread;
// the caller abandons the rest of the token.
func copyRawRun(r *bitReader, out []byte, outLen int) ([]byte, error) {
	for len(out) < outLen {
		v, err := r.readBits(8)
		if err != nil {
			return nil, err
		}
		if v == 0 {
			break
		}

		out = append(out, byte(v))
	}

	return out, nil
}
